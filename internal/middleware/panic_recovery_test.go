package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "financial-coach/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
)

const brokenRoute = "/ai/spend/broken"

type PanicRecoveryTestSuite struct {
	suite.Suite
	server *coachServer
}

func TestPanicRecoveryTestSuite(t *testing.T) {
	suite.Run(t, new(PanicRecoveryTestSuite))
}

func (s *PanicRecoveryTestSuite) SetupTest() {
	s.server = newCoachServer(s.T())
	s.server.echo.POST(brokenRoute, func(c echo.Context) error {
		return c.JSON(http.StatusOK, monthTotal(nil, 3))
	})
}

func monthTotal(totals []float64, month int) float64 {
	return totals[month]
}

func (s *PanicRecoveryTestSuite) TestPanicBecomesInternalError() {
	before := testutil.ToFloat64(panicsRecoveredTotal.WithLabelValues(brokenRoute))

	rec := s.server.do(http.MethodPost, brokenRoute, spendHistoryBody, "panic-trace")

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal("panic-trace", rec.Header().Get(TraceIDHeader))
	s.NotContains(rec.Body.String(), "index out of range")

	var body apperrors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal("SYSTEM_001", body.Error.Code)
	s.Equal("panic-trace", body.Error.TraceID)
	s.Empty(body.Error.Details)

	s.Equal(before+1, testutil.ToFloat64(panicsRecoveredTotal.WithLabelValues(brokenRoute)))
}

func (s *PanicRecoveryTestSuite) TestGeneratedTraceIDInPanicBody() {
	rec := s.server.do(http.MethodPost, brokenRoute, "", "")

	var body apperrors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.NotEmpty(body.Error.TraceID)
	s.Equal(rec.Header().Get(TraceIDHeader), body.Error.TraceID)
}

func (s *PanicRecoveryTestSuite) TestServiceKeepsServingAfterPanic() {
	s.server.do(http.MethodPost, brokenRoute, "", "")
	before := testutil.ToFloat64(panicsRecoveredTotal.WithLabelValues("/ai/spend/insights"))

	rec := s.server.do(http.MethodPost, "/ai/spend/insights", spendHistoryBody, "")

	s.Equal(http.StatusOK, rec.Code)
	s.Equal(before, testutil.ToFloat64(panicsRecoveredTotal.WithLabelValues("/ai/spend/insights")))
}

func (s *PanicRecoveryTestSuite) TestCommittedResponseIsKept() {
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	err := PanicRecovery()(func(c echo.Context) error {
		if err := c.String(http.StatusAccepted, "partial"); err != nil {
			return err
		}
		panic("after write")
	})(c)

	s.NoError(err)
	s.Equal(http.StatusAccepted, rec.Code)
	s.Equal("partial", rec.Body.String())
}

func (s *PanicRecoveryTestSuite) TestWithoutRequestIDMiddleware() {
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	err := PanicRecovery()(func(c echo.Context) error {
		panic("no trace")
	})(c)

	s.NoError(err)
	var body apperrors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal("unknown", body.Error.TraceID)
}
