// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package metrics records nimbus authorship checks.
package metrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "nimbus"

const (
	resultEligible   = "eligible"
	resultIneligible = "ineligible"
)

// Recorder records the outcome of authorship checks.
type Recorder interface {
	// Precheck records the outcome of an eligibility pre-check.
	Precheck(eligible bool)
	// FullCheck records the outcome of the eligibility check of a block.
	FullCheck(eligible bool)
	// AuthorNoted records the notification of a block author.
	AuthorNoted()
}

// Noop is the recorder discarding everything.
type Noop struct{}

func (Noop) Precheck(bool)  {}
func (Noop) FullCheck(bool) {}
func (Noop) AuthorNoted()   {}

// Prometheus is the recorder exposing prometheus counters.
type Prometheus struct {
	prechecks   *prometheus.CounterVec
	fullChecks  *prometheus.CounterVec
	authorNoted prometheus.Counter
}

// NewPrometheus creates the counters and registers them on the registerer.
// Counters already registered are reused.
func NewPrometheus(registerer prometheus.Registerer) (metrics *Prometheus, err error) {
	metrics = new(Prometheus)

	prechecks := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "author",
		Name:      "prechecks_total",
		Help:      "eligibility pre-checks by result",
	}, []string{"result"})
	collector, err := register(registerer, "pre-checks counter", prechecks)
	if err != nil {
		return nil, err
	}
	metrics.prechecks = collector.(*prometheus.CounterVec)

	fullChecks := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "author",
		Name:      "full_checks_total",
		Help:      "eligibility checks of imported blocks by result",
	}, []string{"result"})
	collector, err = register(registerer, "full checks counter", fullChecks)
	if err != nil {
		return nil, err
	}
	metrics.fullChecks = collector.(*prometheus.CounterVec)

	authorNoted := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "author",
		Name:      "noted_total",
		Help:      "block authors notified to the event handler",
	})
	collector, err = register(registerer, "authors noted counter", authorNoted)
	if err != nil {
		return nil, err
	}
	metrics.authorNoted = collector.(prometheus.Counter)

	return metrics, nil
}

func register(registerer prometheus.Registerer, name string,
	collector prometheus.Collector) (registered prometheus.Collector, err error) {
	err = registerer.Register(collector)
	if err == nil {
		return collector, nil
	}

	var alreadyRegistered prometheus.AlreadyRegisteredError
	if errors.As(err, &alreadyRegistered) {
		return alreadyRegistered.ExistingCollector, nil
	}
	return nil, fmt.Errorf("cannot register %s: %w", name, err)
}

func result(eligible bool) string {
	if eligible {
		return resultEligible
	}
	return resultIneligible
}

func (m *Prometheus) Precheck(eligible bool) {
	m.prechecks.WithLabelValues(result(eligible)).Inc()
}

func (m *Prometheus) FullCheck(eligible bool) {
	m.fullChecks.WithLabelValues(result(eligible)).Inc()
}

func (m *Prometheus) AuthorNoted() {
	m.authorNoted.Inc()
}

var (
	_ Recorder = Noop{}
	_ Recorder = (*Prometheus)(nil)
)
