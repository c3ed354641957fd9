package attendance_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-payroll/internal/attendance"
	"go-payroll/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeService struct {
	listFn func(ctx context.Context, q attendance.PendingQuery) (attendance.PendingAttendanceResponse, error)
}

func (f *fakeService) ListPending(ctx context.Context, q attendance.PendingQuery) (attendance.PendingAttendanceResponse, error) {
	return f.listFn(ctx, q)
}

type envelope struct {
	Ok    bool                                 `json:"ok"`
	Data  attendance.PendingAttendanceResponse `json:"data"`
	Error *struct {
		Code string `json:"code"`
	} `json:"error"`
}

func serve(t *testing.T, svc attendance.Service, target string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	apperror.Init()

	r := gin.New()
	r.GET("/attendances/pending", attendance.NewHandler(svc).GetPending)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func TestHandler_GetPending(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var got attendance.PendingQuery
		svc := &fakeService{listFn: func(ctx context.Context, q attendance.PendingQuery) (attendance.PendingAttendanceResponse, error) {
			got = q
			return attendance.PendingAttendanceResponse{Year: q.Year, Month: q.Month, Count: 1, Pending: []attendance.PendingAttendanceRow{{ID: "a"}}}, nil
		}}

		w, env := serve(t, svc, "/attendances/pending?year=2025&month=2")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, env.Ok)
		assert.Equal(t, attendance.PendingQuery{Year: 2025, Month: 2}, got)
		assert.Equal(t, 1, env.Data.Count)
	})

	t.Run("invalid month", func(t *testing.T) {
		svc := &fakeService{listFn: func(ctx context.Context, q attendance.PendingQuery) (attendance.PendingAttendanceResponse, error) {
			t.Fatal("service must not be called")
			return attendance.PendingAttendanceResponse{}, nil
		}}

		w, env := serve(t, svc, "/attendances/pending?year=2025&month=13")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, env.Ok)
		if assert.NotNil(t, env.Error) {
			assert.Equal(t, apperror.CodeValidation, env.Error.Code)
		}
	})

	t.Run("service error", func(t *testing.T) {
		svc := &fakeService{listFn: func(ctx context.Context, q attendance.PendingQuery) (attendance.PendingAttendanceResponse, error) {
			return attendance.PendingAttendanceResponse{}, apperror.ErrInternal
		}}

		w, env := serve(t, svc, "/attendances/pending?year=2025&month=2")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		if assert.NotNil(t, env.Error) {
			assert.Equal(t, apperror.CodeInternalError, env.Error.Code)
		}
	})
}
