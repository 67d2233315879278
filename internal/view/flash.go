package view

import (
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	flashSessionName   = "flash-session"
	flashKeySuccess    = "success"
	flashKeyError      = "error"
	flashKeyFormPrefix = "form_"
)

// FlashData is the set of one-shot notices shown on the next rendered page.
type FlashData struct {
	Success []string
	Error   []string
}

// Empty reports whether there is nothing to show.
func (f FlashData) Empty() bool {
	return len(f.Success) == 0 && len(f.Error) == 0
}

// setFlash sets a flash message in the session.
func setFlash(c echo.Context, key, message string) {
	sess, err := session.Get(flashSessionName, c)
	if err != nil {
		return
	}
	sess.AddFlash(message, key)
	_ = sess.Save(c.Request(), c.Response())
}

// SetFlashSuccess sets a success flash message.
func SetFlashSuccess(c echo.Context, message string) {
	setFlash(c, flashKeySuccess, message)
}

// SetFlashError sets an error flash message.
func SetFlashError(c echo.Context, message string) {
	setFlash(c, flashKeyError, message)
}

// KeepFormValues stores submitted form values so the next render of the form
// can pre-fill them. Empty values are skipped. Passwords must never be kept.
func KeepFormValues(c echo.Context, values map[string]string) {
	sess, err := session.Get(flashSessionName, c)
	if err != nil {
		return
	}
	kept := false
	for field, value := range values {
		if value == "" {
			continue
		}
		sess.AddFlash(value, flashKeyFormPrefix+field)
		kept = true
	}
	if kept {
		_ = sess.Save(c.Request(), c.Response())
	}
}

// TakeFormValues returns and clears the values kept for fields. Fields with
// nothing kept are absent from the result.
func TakeFormValues(c echo.Context, fields ...string) map[string]string {
	values := make(map[string]string, len(fields))
	sess, err := session.Get(flashSessionName, c)
	if err != nil {
		return values
	}
	for _, field := range fields {
		flashes := sess.Flashes(flashKeyFormPrefix + field)
		if len(flashes) == 0 {
			continue
		}
		if v, ok := flashes[len(flashes)-1].(string); ok {
			values[field] = v
		}
	}
	if len(values) > 0 {
		_ = sess.Save(c.Request(), c.Response())
	}
	return values
}

// GetFlashData retrieves and clears flash messages from the session.
func GetFlashData(c echo.Context) FlashData {
	var data FlashData

	sess, err := session.Get(flashSessionName, c)
	if err != nil {
		return data
	}

	successFlashes := sess.Flashes(flashKeySuccess)
	errorFlashes := sess.Flashes(flashKeyError)
	if len(successFlashes) == 0 && len(errorFlashes) == 0 {
		return data
	}

	data.Success = toStrings(successFlashes)
	data.Error = toStrings(errorFlashes)
	_ = sess.Save(c.Request(), c.Response())
	return data
}

func toStrings(values []interface{}) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
