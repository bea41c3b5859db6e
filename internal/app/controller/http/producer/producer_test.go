package producer

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/escrima/go-orders-service/internal/app/controller/http/producer/mock"
	"github.com/escrima/go-orders-service/internal/app/usecase/publish"
)

func TestPublishMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := mock.NewMockMessagePublisher(ctrl)

	type want struct {
		statusCode int
		outputBody string
	}
	tests := []struct {
		name      string
		body      string
		isPublish bool
		result    publish.Result

		want want
	}{
		{
			name:      "message forwarded to broker",
			body:      `{"mensaje":"hola","dato":1}`,
			isPublish: true,
			result: publish.Result{
				Success: true,
				Detail:  "No error",
			},

			want: want{
				statusCode: http.StatusOK,
				outputBody: `{"mensaje":"hola","dato":1}`,
			},
		},
		{
			name:      "json array payload is accepted",
			body:      `[1, 2, 3]`,
			isPublish: true,
			result: publish.Result{
				Success: true,
				Detail:  "No error",
			},

			want: want{
				statusCode: http.StatusOK,
				outputBody: `[1, 2, 3]`,
			},
		},
		{
			name:      "malformed json never reaches broker",
			body:      `{"mensaje":`,
			isPublish: false,

			want: want{
				statusCode: http.StatusBadRequest,
				outputBody: `{"error":"Error al decodificar formato JSON"}`,
			},
		},
		{
			name:      "empty body never reaches broker",
			body:      "",
			isPublish: false,

			want: want{
				statusCode: http.StatusBadRequest,
				outputBody: `{"error":"Error al decodificar formato JSON"}`,
			},
		},
		{
			name:      "broker connection failure",
			body:      `{"mensaje":"hola"}`,
			isPublish: true,
			result: publish.Result{
				Success: false,
				Detail:  "broker connection error",
			},

			want: want{
				statusCode: http.StatusBadGateway,
				outputBody: `{"broker":"broker connection error"}`,
			},
		},
		{
			name:      "broker topic failure",
			body:      `{"mensaje":"hola"}`,
			isPublish: true,
			result: publish.Result{
				Success: false,
				Detail:  "broker topic can not be used",
			},

			want: want{
				statusCode: http.StatusBadGateway,
				outputBody: `{"broker":"broker topic can not be used"}`,
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodPost, "/api/v1/producer", strings.NewReader(test.body))
			writer := httptest.NewRecorder()

			if test.isPublish {
				s.EXPECT().Publish(gomock.Any(), []byte(test.body)).Return(test.result)
			} else {
				s.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)
			}

			producer := New(s)
			handler := producer.PublishMessage()
			handler(writer, request)

			res := writer.Result()

			assert.Equal(t, test.want.statusCode, res.StatusCode)

			bodyResult, err := io.ReadAll(res.Body)
			require.NoError(t, err)
			assert.Equal(t, test.want.outputBody, strings.TrimSuffix(string(bodyResult), "\n"))

			err = res.Body.Close()
			require.NoError(t, err)
		})
	}
}
