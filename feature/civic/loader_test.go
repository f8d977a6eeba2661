package civic

import (
	"testing"

	"civic-sync/feature/civic/civictest"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestLoader(t *testing.T) {
	feature := NewFeature(civictest.NewDB(t), zap.NewNop())

	assert.Equal(t, "civic", feature.Name())
	assert.True(t, feature.IsEnabled())

	app := fiber.New()
	err := feature.Load(app)
	assert.NoError(t, err)
}

func TestLoader_NoDatabase(t *testing.T) {
	feature := NewFeature(nil, zap.NewNop())
	assert.False(t, feature.IsEnabled())
}
