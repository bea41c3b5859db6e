package publish

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeSink struct {
	err     error
	payload []byte
}

func (s *fakeSink) Send(_ context.Context, payload []byte) error {
	s.payload = payload

	return s.err
}

func TestPublish(t *testing.T) {
	tests := []struct {
		name    string
		sendErr error

		want Result
	}{
		{
			name:    "successful publish",
			sendErr: nil,

			want: Result{
				Success: true,
				Detail:  "No error",
			},
		},
		{
			name:    "connection failure is normalized",
			sendErr: fmt.Errorf("%w: dial tcp 127.0.0.1:9092: connect: connection refused", ErrBrokerConnection),

			want: Result{
				Success: false,
				Detail:  "broker connection error",
			},
		},
		{
			name:    "topic failure is normalized",
			sendErr: fmt.Errorf("%w (topic cola_test): unknown topic or partition", ErrBrokerTopic),

			want: Result{
				Success: false,
				Detail:  "broker topic can not be used",
			},
		},
		{
			name:    "unclassified failure keeps its message",
			sendErr: errors.New("record too large"),

			want: Result{
				Success: false,
				Detail:  "record too large",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := &fakeSink{err: tt.sendErr}
			gateway := New(sink)

			result := gateway.Publish(context.Background(), []byte(`{"mensaje":"hola"}`))

			assert.Equal(t, tt.want, result)
			assert.Equal(t, []byte(`{"mensaje":"hola"}`), sink.payload)
		})
	}
}
