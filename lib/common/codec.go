// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package common

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
)

// ErrTrailingBytes is returned when decoding leaves unread input.
var ErrTrailingBytes = errors.New("trailing bytes after decoding")

// Marshal SCALE encodes the value.
func Marshal(v interface{}) ([]byte, error) {
	buffer := bytes.NewBuffer(nil)
	err := scale.NewEncoder(buffer).Encode(v)
	if err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

// MustMarshal SCALE encodes the value and panics on failure.
func MustMarshal(v interface{}) []byte {
	b, err := Marshal(v)
	if err != nil {
		panic(err)
	}
	return b
}

// Unmarshal SCALE decodes data into dst, which must be a pointer.
// The whole input must be consumed. Values implementing scale.Decodeable
// are decoded with their own method, since the reflection decoder cannot
// hold fixed size arrays implementing it.
func Unmarshal(data []byte, dst interface{}) (err error) {
	reader := bytes.NewReader(data)
	decoder := scale.NewDecoder(reader)
	if decodeable, ok := dst.(scale.Decodeable); ok {
		err = decodeable.Decode(*decoder)
	} else {
		err = decoder.Decode(dst)
	}
	if err != nil {
		return err
	}

	if reader.Len() > 0 {
		return fmt.Errorf("%w: %d bytes left", ErrTrailingBytes, reader.Len())
	}
	return nil
}
