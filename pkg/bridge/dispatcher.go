/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package bridge

import (
	"fmt"

	"github.com/hyperledger/indy-sdk-go/pkg/indyerror"
	"github.com/hyperledger/indy-sdk-go/pkg/native"
)

// resultShape describes how to interpret a callback payload.
type resultShape int

const (
	shapeEmpty resultShape = iota
	shapeString
	shapeStringPair
	shapeHandle
)

func (s resultShape) String() string {
	switch s {
	case shapeEmpty:
		return "empty"
	case shapeString:
		return "string"
	case shapeStringPair:
		return "string pair"
	case shapeHandle:
		return "handle"
	default:
		return fmt.Sprintf("shape(%d)", int(s))
	}
}

// OnCallback is the single completion entry point handed to the native
// layer. It runs on whatever thread the native side picked, looks up and
// removes the pending operation, decodes the payload per the operation's
// declared shape and resolves the future exactly once.
//
// A callback for an unknown handle - late, duplicate, or never issued - is
// dropped with a warning: the original caller has already been resolved or
// never existed, so there is nobody to fail. Nothing here may panic toward
// the native boundary; decode failures become structured errors on the
// future and anything else is recovered and logged.
func (b *Bridge) OnCallback(cmd native.CommandHandle, code indyerror.Code, values ...interface{}) {
	defer func() {
		if r := recover(); r != nil {
			logger.Errorf("panic while dispatching callback for command handle %d: %v", cmd, r)
		}
	}()

	op, ok := b.registry.take(cmd)
	if !ok {
		logger.Warnf("dropping callback for unknown command handle %d (late or duplicate delivery)", cmd)

		return
	}

	b.alloc.release(cmd)

	if code != indyerror.Success {
		op.fut.complete(nil, indyerror.Translate(code))

		return
	}

	vals, err := decode(op.shape, values)
	if err != nil {
		logger.Errorf("bad callback payload for %s (command handle %d): %s", op.op, cmd, err)
	}

	op.fut.complete(vals, err)
}

// decode validates a success payload against the declared result shape. A
// mismatch is an internal error delivered to the caller's future, never a
// crash. NULL strings from the native side arrive as nil and decode as "".
func decode(shape resultShape, values []interface{}) ([]interface{}, error) {
	switch shape {
	case shapeEmpty:
		if len(values) != 0 {
			return nil, shapeMismatch(shape, values)
		}

		return nil, nil
	case shapeString:
		if len(values) != 1 {
			return nil, shapeMismatch(shape, values)
		}

		s, err := decodeString(values[0])
		if err != nil {
			return nil, err
		}

		return []interface{}{s}, nil
	case shapeStringPair:
		if len(values) != 2 {
			return nil, shapeMismatch(shape, values)
		}

		first, err := decodeString(values[0])
		if err != nil {
			return nil, err
		}

		second, err := decodeString(values[1])
		if err != nil {
			return nil, err
		}

		return []interface{}{first, second}, nil
	case shapeHandle:
		if len(values) != 1 {
			return nil, shapeMismatch(shape, values)
		}

		h, err := decodeHandle(values[0])
		if err != nil {
			return nil, err
		}

		return []interface{}{h}, nil
	default:
		return nil, indyerror.Internal(fmt.Sprintf("unknown result shape %d", shape))
	}
}

func shapeMismatch(shape resultShape, values []interface{}) *indyerror.Error {
	return indyerror.Internal(fmt.Sprintf("callback payload has %d field(s), result shape %s expected",
		len(values), shape))
}

func decodeString(v interface{}) (string, error) {
	if v == nil {
		return "", nil
	}

	s, ok := v.(string)
	if !ok {
		return "", indyerror.Internal(fmt.Sprintf("callback field has type %T, string expected", v))
	}

	return s, nil
}

func decodeHandle(v interface{}) (int32, error) {
	switch h := v.(type) {
	case int32:
		return h, nil
	case int:
		return int32(h), nil
	case int64:
		return int32(h), nil
	default:
		return 0, indyerror.Internal(fmt.Sprintf("callback field has type %T, handle expected", v))
	}
}
