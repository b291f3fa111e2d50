package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColumns(t *testing.T) {
	tests := []struct {
		name    string
		spec    string
		want    []Column
		wantErr bool
	}{
		{
			name: "plain selection",
			spec: "NAME,SIZE,TYPE,MOUNTPOINT",
			want: []Column{ColName, ColSize, ColType, ColMountPoint},
		},
		{
			name: "mixed case with spaces and an unknown token",
			spec: "name, size , BOGUS,type",
			want: []Column{ColName, ColSize, ColType},
		},
		{
			name: "order preserved",
			spec: "uuid,label,fstype",
			want: []Column{ColUUID, ColLabel, ColFSType},
		},
		{
			name: "repeats preserved",
			spec: "name,name",
			want: []Column{ColName, ColName},
		},
		{
			name: "empty tokens skipped",
			spec: ",name,,size,",
			want: []Column{ColName, ColSize},
		},
		{
			name:    "nothing recognized",
			spec:    "BOGUS,JUNK",
			wantErr: true,
		},
		{
			name:    "only separators",
			spec:    ",",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColumns(tt.spec)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDefaultColumns(t *testing.T) {
	assert.Equal(t, []Column{ColName, ColSize, ColType, ColMountPoint}, DefaultColumns())
}

func TestMetadataColumns(t *testing.T) {
	assert.Equal(t,
		[]Column{ColName, ColSize, ColType, ColFSType, ColMountPoint, ColLabel, ColUUID},
		MetadataColumns())
}
