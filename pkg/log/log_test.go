package log

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestWithCorrelationID(t *testing.T) {
	t.Run("Gera um novo ID", func(t *testing.T) {
		ctx, id := WithCorrelationID(context.Background(), "")

		_, err := uuid.Parse(id)
		assert.NoError(t, err)
		assert.Equal(t, id, GetCorrelationID(ctx))
	})

	t.Run("Reaproveita o ID recebido", func(t *testing.T) {
		ctx, id := WithCorrelationID(context.Background(), "req-123")

		assert.Equal(t, "req-123", id)
		assert.Equal(t, "req-123", GetCorrelationID(ctx))
	})

	t.Run("Contexto sem ID", func(t *testing.T) {
		assert.Empty(t, GetCorrelationID(context.Background()))
	})
}

func TestConfigure(t *testing.T) {
	t.Cleanup(SetupTestLogger)

	assert.Equal(t, logrus.WarnLevel, Configure("warn"))
	assert.Equal(t, logrus.WarnLevel, logrus.GetLevel())

	assert.Equal(t, logrus.InfoLevel, Configure("verbose"))
}

func TestWithFields_DevelopmentFilter(t *testing.T) {
	t.Setenv("APP_ENV", "development")

	base := &logger{entry: logrus.NewEntry(logrus.New())}

	filtered := base.WithFields(Fields{"method": "GET", "user_agent": "curl"}).(*logger)
	assert.Contains(t, filtered.entry.Data, "method")
	assert.NotContains(t, filtered.entry.Data, "user_agent")

	same := base.WithField("user_agent", "curl")
	assert.Same(t, base, same)
}
