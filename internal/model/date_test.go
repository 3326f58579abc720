package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Date
		wantErr bool
	}{
		{name: "valid date", input: "2023-05-15", want: NewDate(2023, 5, 15)},
		{name: "leap day", input: "2024-02-29", want: NewDate(2024, 2, 29)},
		{name: "empty", input: "", wantErr: true},
		{name: "wrong layout", input: "15/05/2023", wantErr: true},
		{name: "month out of range", input: "2023-13-01", wantErr: true},
		{name: "day out of range", input: "2023-02-30", wantErr: true},
		{name: "missing zero padding", input: "2023-5-1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDateSameMonth(t *testing.T) {
	may := time.Date(2023, time.May, 20, 14, 30, 0, 0, time.UTC)

	assert.True(t, NewDate(2023, 5, 1).SameMonth(may))
	assert.True(t, NewDate(2023, 5, 31).SameMonth(may))
	assert.False(t, NewDate(2023, 4, 30).SameMonth(may))
	assert.False(t, NewDate(2023, 6, 1).SameMonth(may))
	assert.False(t, NewDate(2022, 5, 20).SameMonth(may))
}

func TestDateJSON(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		data, err := json.Marshal(NewDate(2023, 5, 15))
		require.NoError(t, err)
		assert.Equal(t, `"2023-05-15"`, string(data))

		var got Date
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, NewDate(2023, 5, 15), got)
	})

	t.Run("rejects non-string", func(t *testing.T) {
		var got Date
		assert.Error(t, json.Unmarshal([]byte(`20230515`), &got))
	})

	t.Run("rejects malformed date", func(t *testing.T) {
		var got Date
		assert.Error(t, json.Unmarshal([]byte(`"May 15, 2023"`), &got))
	})
}

func TestDateString(t *testing.T) {
	assert.Equal(t, "2023-05-05", NewDate(2023, 5, 5).String())
}
