package siteindex_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	siteindex "github.com/fredster9/site-interface"
	"github.com/fredster9/site-interface/mock"
)

func TestFallbackLogger_PrimarySucceeds(t *testing.T) {
	t.Parallel()

	fallbackCalled := false
	logger := &siteindex.FallbackLogger{
		Primary: &mock.AuditLogger{
			AppendFn: func(_ context.Context, _, _ string, _ time.Time) error {
				return nil
			},
		},
		Fallback: &mock.AuditLogger{
			AppendFn: func(_ context.Context, _, _ string, _ time.Time) error {
				fallbackCalled = true
				return nil
			},
		},
	}

	err := logger.Append(context.Background(), "q", "a", time.Now())

	require.NoError(t, err)
	assert.False(t, fallbackCalled)
}

func TestFallbackLogger_PrimaryFails(t *testing.T) {
	t.Parallel()

	var gotQuestion, gotAnswer string
	logger := &siteindex.FallbackLogger{
		Primary: &mock.AuditLogger{
			AppendFn: func(_ context.Context, _, _ string, _ time.Time) error {
				return siteindex.Errorf(siteindex.EUNAVAILABLE, "sheets down")
			},
		},
		Fallback: &mock.AuditLogger{
			AppendFn: func(_ context.Context, question, answer string, _ time.Time) error {
				gotQuestion = question
				gotAnswer = answer
				return nil
			},
		},
	}

	err := logger.Append(context.Background(), "q", "a", time.Now())

	require.NoError(t, err)
	assert.Equal(t, "q", gotQuestion)
	assert.Equal(t, "a", gotAnswer)
}

func TestFallbackLogger_NilPrimary(t *testing.T) {
	t.Parallel()

	fallbackCalled := false
	logger := &siteindex.FallbackLogger{
		Fallback: &mock.AuditLogger{
			AppendFn: func(_ context.Context, _, _ string, _ time.Time) error {
				fallbackCalled = true
				return nil
			},
		},
	}

	err := logger.Append(context.Background(), "q", "a", time.Now())

	require.NoError(t, err)
	assert.True(t, fallbackCalled)
}

func TestFallbackLogger_BothFail(t *testing.T) {
	t.Parallel()

	failing := &mock.AuditLogger{
		AppendFn: func(_ context.Context, _, _ string, _ time.Time) error {
			return siteindex.Errorf(siteindex.EUNAVAILABLE, "down")
		},
	}
	logger := &siteindex.FallbackLogger{Primary: failing, Fallback: failing}

	err := logger.Append(context.Background(), "q", "a", time.Now())

	require.Error(t, err)
	assert.Equal(t, siteindex.EUNAVAILABLE, siteindex.ErrorCode(err))
}

func TestFallbackLogger_NoSinks(t *testing.T) {
	t.Parallel()

	logger := &siteindex.FallbackLogger{}

	err := logger.Append(context.Background(), "q", "a", time.Now())

	require.Error(t, err)
	assert.Equal(t, siteindex.EINVALID, siteindex.ErrorCode(err))
}
