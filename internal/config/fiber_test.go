package config

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFiberJSONCodec(t *testing.T) {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	app := NewFiber(log)
	encoder := app.Config().JSONEncoder
	require.NotNil(t, encoder)

	t.Run("map keys serialize in sorted order", func(t *testing.T) {
		// Nested aggregation payloads rely on key order surviving
		// serialization: categories, tags and dates are keyed by strings
		// whose lexicographic order is the contractual ascending order.
		out, err := encoder(map[string]map[string]float64{
			"b-tag": {"2025-03-02": 1, "2025-03-01": 2},
			"a-tag": {"2025-03-09": 3},
		})
		require.NoError(t, err)

		assert.Equal(t, `{"a-tag":{"2025-03-09":3},"b-tag":{"2025-03-01":2,"2025-03-02":1}}`, string(out))
	})

	t.Run("decoder round trips", func(t *testing.T) {
		var decoded map[string]float64
		require.NoError(t, app.Config().JSONDecoder([]byte(`{"x":1.5}`), &decoded))
		assert.Equal(t, map[string]float64{"x": 1.5}, decoded)
	})
}
