package common

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := SetupLogger(&LoggingOpts{
		JSON:    true,
		Service: "rsakeyconv",
		Version: "v1.2.3",
		Output:  &buf,
	})

	log.Info("converted", "direction", "to-spki")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "converted", record["msg"])
	assert.Equal(t, "rsakeyconv", record["service"])
	assert.Equal(t, "v1.2.3", record["version"])
	assert.Equal(t, "to-spki", record["direction"])
}

func TestSetupLogger_DebugLevel(t *testing.T) {
	var buf bytes.Buffer
	SetupLogger(&LoggingOpts{Output: &buf}).Debug("hidden")
	assert.Empty(t, buf.String())

	SetupLogger(&LoggingOpts{Debug: true, Output: &buf}).Debug("shown")
	assert.Contains(t, buf.String(), "msg=shown")
}
