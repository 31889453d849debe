package tracing_test

import (
	"context"
	"studytracker/pkg/tracing"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetup_NoopWithoutEndpoint(t *testing.T) {
	shutdown, err := tracing.Setup(context.Background(), tracing.Options{ServiceName: "test"})
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
}

func TestSetup_WithEndpoint(t *testing.T) {
	// Non-routable address; nothing is exported before shutdown.
	shutdown, err := tracing.Setup(context.Background(), tracing.Options{
		Endpoint:    "192.0.2.1:4318",
		Insecure:    true,
		ServiceName: "test",
		SampleRatio: 2,
	})
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
}
