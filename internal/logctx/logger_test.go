package logctx

import (
	"bytes"
	"context"
	"testing"
)

func TestLogEvent(t *testing.T) {
	tests := []struct {
		name       string
		printLevel int
		eventLevel int
		message    string
		vars       []any
		want       string
	}{
		{
			name:       "printed at matching level",
			printLevel: VerbosityStandard,
			eventLevel: VerbosityStandard,
			message:    "hello\n",
			want:       "hello\n",
		},
		{
			name:       "suppressed above print level",
			printLevel: VerbosityStandard,
			eventLevel: VerbosityProgress,
			message:    "hidden\n",
			want:       "",
		},
		{
			name:       "formats vars",
			printLevel: VerbosityData,
			eventLevel: VerbosityProgress,
			message:    "sent %d bytes\n",
			vars:       []any{42},
			want:       "sent 42 bytes\n",
		},
		{
			name:       "quiet prints nothing",
			printLevel: VerbosityNone,
			eventLevel: VerbosityStandard,
			message:    "progress\n",
			want:       "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			ctx := WithLogger(context.Background(), NewLogger(tt.printLevel, &out))

			LogEvent(ctx, tt.eventLevel, tt.message, tt.vars...)

			if out.String() != tt.want {
				t.Fatalf("output: expected %q, got %q", tt.want, out.String())
			}
		})
	}
}

func TestLogEventWithoutLogger(t *testing.T) {
	// Context without a logger must not panic
	LogEvent(context.Background(), VerbosityStandard, "ignored\n")
}
