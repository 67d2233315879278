package domain_test

import (
	"testing"

	"github.com/nfrund/marksweb/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestMarksRecord_SetUpdatesOnlyOneKey(t *testing.T) {
	for _, subject := range domain.Subjects {
		t.Run(subject, func(t *testing.T) {
			var m domain.MarksRecord
			ok := m.Set(subject, "42")
			assert.True(t, ok)

			for _, other := range domain.Subjects {
				if other == subject {
					assert.Equal(t, "42", m.Get(other))
				} else {
					assert.Empty(t, m.Get(other), "editing %s must not touch %s", subject, other)
				}
			}
		})
	}
}

func TestMarksRecord_UnknownSubject(t *testing.T) {
	var m domain.MarksRecord
	assert.False(t, m.Set("art", "99"))
	assert.Equal(t, "", m.Get("art"))
	assert.Equal(t, domain.MarksRecord{}, m)
}

func TestFormatScore(t *testing.T) {
	assert.Equal(t, "80", domain.FormatScore(80))
	assert.Equal(t, "82.5", domain.FormatScore(82.5))
	assert.Equal(t, "0", domain.FormatScore(0))
}
