package sw1dto2d

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"
)

func TestUTMProjectorZones(t *testing.T) {
	p, err := NewUTMProjector(32645)
	require.NoError(t, err)
	require.Equal(t, 45, p.zone)
	require.True(t, p.northern)

	p, err = NewUTMProjector(32723)
	require.NoError(t, err)
	require.Equal(t, 23, p.zone)
	require.False(t, p.northern)

	p, err = NewUTMProjector(26917) // NAD83 zone 17N
	require.NoError(t, err)
	require.Equal(t, 17, p.zone)
	require.True(t, p.northern)

	var pe *ProjectionError
	_, err = NewUTMProjector(99999)
	require.ErrorAs(t, err, &pe)
	_, err = NewUTMProjector(4326) // geographic, not a UTM target
	require.ErrorAs(t, err, &pe)
}

func TestUTMRoundTrip(t *testing.T) {
	p, err := NewUTMProjector(32645)
	require.NoError(t, err)

	src := []geom.Coord{{88.90, 25.10}, {88.99, 25.12}, {86.50, 24.80}}
	fwd, err := p.Forward(src)
	require.NoError(t, err)
	back, err := p.Inverse(fwd)
	require.NoError(t, err)

	// sub-meter: about 1e-5 degrees at this latitude
	for i := range src {
		require.InDelta(t, src[i][0], back[i][0], 1e-5)
		require.InDelta(t, src[i][1], back[i][1], 1e-5)
	}
}

func TestUTMForwardWrongZone(t *testing.T) {
	p, err := NewUTMProjector(32645) // zone 45 spans 84°E to 90°E
	require.NoError(t, err)

	var pe *ProjectionError
	_, err = p.Forward([]geom.Coord{{95.0, 25.0}})
	require.ErrorAs(t, err, &pe)
}
