package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"studio/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	return c, recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder) Response {
	t.Helper()
	var body Response
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body
}

func TestSuccessEnvelope(t *testing.T) {
	c, recorder := newTestContext(t)

	Success(c, gin.H{"id": 1})

	assert.Equal(t, http.StatusOK, recorder.Code)
	body := decodeBody(t, recorder)
	assert.Equal(t, 1, body.Code)
	assert.Equal(t, "Thành công", body.Mess)
	assert.NotNil(t, body.Data)
	assert.Nil(t, body.Pagination)
}

func TestSuccessWithPagination(t *testing.T) {
	c, recorder := newTestContext(t)

	SuccessWithPagination(c, []int{1, 2}, 0, 20, 42)

	body := decodeBody(t, recorder)
	require.NotNil(t, body.Pagination)
	assert.Equal(t, 0, body.Pagination.Page)
	assert.Equal(t, 20, body.Pagination.Limit)
	assert.Equal(t, 42, body.Pagination.Total)
}

func TestErrorMapsAppErrorCodes(t *testing.T) {
	cases := []struct {
		code   errors.ErrorCode
		status int
	}{
		{errors.ErrCodeNotFound, http.StatusNotFound},
		{errors.ErrCodeUserNotFound, http.StatusNotFound},
		{errors.ErrCodeUnauthorized, http.StatusUnauthorized},
		{errors.ErrCodeInvalidToken, http.StatusUnauthorized},
		{errors.ErrCodeInvalidStateTransition, http.StatusConflict},
		{errors.ErrCodeDBError, http.StatusInternalServerError},
		{errors.ErrCodeInvalidDiscount, http.StatusBadRequest},
		{errors.ErrCodeRequiredField, http.StatusBadRequest},
	}

	for _, tc := range cases {
		c, recorder := newTestContext(t)
		Error(c, errors.NewAppError(tc.code, "thông báo lỗi", nil))
		assert.Equal(t, tc.status, recorder.Code, "mã %s", tc.code)

		body := decodeBody(t, recorder)
		assert.Equal(t, 0, body.Code)
		assert.Equal(t, "thông báo lỗi", body.Mess)
	}
}

func TestErrorFallsBackToServerError(t *testing.T) {
	c, recorder := newTestContext(t)

	Error(c, assert.AnError)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	body := decodeBody(t, recorder)
	assert.Equal(t, "Lỗi server", body.Mess)
}
