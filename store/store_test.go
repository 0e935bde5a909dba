package store

import "testing"

func TestDataTypeString(t *testing.T) {
	cases := []struct {
		dataType DataType
		expected string
	}{
		{DataTypeVault, "vault"},
		{DataTypeKeyExport, "key export"},
		{DataTypeEnd + 1, "data type 3"},
	}
	for _, c := range cases {
		if got := c.dataType.String(); got != c.expected {
			t.Fatalf("expected %q, got %q", c.expected, got)
		}
	}
}
