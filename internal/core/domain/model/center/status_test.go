package center_test

import (
	"testing"

	"dispatch/internal/core/domain/model/center"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    center.Status
		wantErr bool
	}{
		{in: "AVAILABLE", want: center.Available},
		{in: "OCCUPIED", want: center.Occupied},
		{in: "STALE", wantErr: true},
		{in: "available", wantErr: true},
		{in: "", wantErr: true},
		{in: "UNKNOWN", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := center.ParseStatus(tt.in)

			if tt.wantErr {
				require.ErrorIs(t, err, center.ErrStatusIsInvalid)
				assert.Equal(t, center.Unknown, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.in, got.String())
		})
	}
}

func TestStatus_Validate(t *testing.T) {
	require.NoError(t, center.Available.Validate())
	require.NoError(t, center.Occupied.Validate())
	require.ErrorIs(t, center.Unknown.Validate(), center.ErrStatusIsInvalid)
	require.ErrorIs(t, center.Status(9).Validate(), center.ErrStatusIsInvalid)
	assert.Equal(t, "UNKNOWN", center.Status(9).String())
}
