package handlers

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/marksweb/internal/activity"
	"github.com/nfrund/marksweb/internal/apiclient"
	"github.com/nfrund/marksweb/internal/export"
	"github.com/nfrund/marksweb/internal/middleware"
	"github.com/nfrund/marksweb/internal/view"
	"github.com/nfrund/marksweb/internal/view/dto/grades"
	"github.com/nfrund/marksweb/web/src/templates/pages"
)

const (
	msgMarksFailed  = "Error submitting marks."
	msgReportFailed = "Could not load report."
)

// GradesHandler serves the protected marks entry and report pages. Routes
// using it sit behind middleware.RequireAuth.
type GradesHandler struct {
	api  *apiclient.Client
	feed *activity.Feed
}

// NewGradesHandler creates a new GradesHandler.
func NewGradesHandler(api *apiclient.Client, feed *activity.Feed) *GradesHandler {
	return &GradesHandler{api: api, feed: feed}
}

// MarksGet renders the empty marks form (GET /marks).
func (h *GradesHandler) MarksGet(c echo.Context) error {
	return renderPage(c, "Marks", pages.Marks(grades.MarksData{}))
}

// MarksPost submits the whole record and shows the computed average and
// grade. Duplicate submits are not guarded against; the last response wins.
func (h *GradesHandler) MarksPost(c echo.Context) error {
	ctx := c.Request().Context()
	logger := middleware.FromContext(ctx)
	tokens := view.Tokens(c)

	var data grades.MarksData
	err := c.Bind(&data.Record)
	if err == nil {
		data.Result, err = h.api.WithTokens(tokens).SubmitMarks(ctx, data.Record)
	}

	h.feed.Record(ctx, activity.Event{Kind: activity.KindMarks, Username: tokens.Username(), Success: err == nil, RequestID: requestID(c)})

	if err != nil {
		logger.Warn("Marks submission failed", "error", err)
		data.Result = nil
		data.Error = msgMarksFailed
	}

	if isHTMX(c) {
		return renderFragment(c, pages.MarksResult(data))
	}
	return renderPage(c, "Marks", pages.Marks(data))
}

// ReportGet shows the student's report card (GET /report).
func (h *GradesHandler) ReportGet(c echo.Context) error {
	ctx := c.Request().Context()
	tokens := view.Tokens(c)

	var data grades.ReportData
	report, err := h.api.WithTokens(tokens).StudentReport(ctx)
	h.feed.Record(ctx, activity.Event{Kind: activity.KindReport, Username: tokens.Username(), Success: err == nil, RequestID: requestID(c)})
	if err != nil {
		middleware.FromContext(ctx).Warn("Report fetch failed", "error", err)
		data.Error = msgReportFailed
	} else {
		data.Report = report
	}
	return renderPage(c, "Report", pages.Report(data))
}

// ReportExport downloads the report as an Excel workbook
// (GET /report/export.xlsx).
func (h *GradesHandler) ReportExport(c echo.Context) error {
	ctx := c.Request().Context()
	logger := middleware.FromContext(ctx)

	report, err := h.api.WithTokens(view.Tokens(c)).StudentReport(ctx)
	if err != nil {
		logger.Warn("Report fetch for export failed", "error", err)
		view.SetFlashError(c, msgReportFailed)
		return c.Redirect(http.StatusSeeOther, "/report")
	}
	if report.Empty() {
		view.SetFlashError(c, "No marks available.")
		return c.Redirect(http.StatusSeeOther, "/report")
	}

	var buf bytes.Buffer
	if err := export.WriteReport(&buf, report); err != nil {
		logger.Error("Failed to build report workbook", "error", err)
		view.SetFlashError(c, msgReportFailed)
		return c.Redirect(http.StatusSeeOther, "/report")
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", export.Filename))
	return c.Blob(http.StatusOK, export.ContentType, buf.Bytes())
}
