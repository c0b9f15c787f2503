package speech

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/blindrun/blindrun/internal/testutil"
)

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"camel case split", "FixWiring", "Fix Wiring"},
		{"console suffix stripped", "FixWiringConsole", "Fix Wiring"},
		{"task suffix stripped", "UploadDataTask", "Upload Data"},
		{"clone marker removed", "FixWiring(Clone)", "Fix Wiring"},
		{"already spaced", "Fix Wiring", "Fix Wiring"},
		{"plain word", "Wiring", "Wiring"},
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeName(tt.in))
		})
	}
}

func TestObjectName(t *testing.T) {
	tests := []struct {
		name string
		obj  *testutil.Console
		want string
	}{
		{
			"cleaning keyword wins",
			&testutil.Console{Name: "CleanVentConsole", TaskTypes: []string{"FixWiring"}},
			"Cleaning station",
		},
		{
			"first real task type",
			&testutil.Console{Name: "GenericConsole", TaskTypes: []string{"", "None", "SwipeCard"}},
			"Swipe Card",
		},
		{
			"falls back to raw name",
			&testutil.Console{Name: "UploadDataConsole(Clone)", TaskTypes: []string{"None"}},
			"Upload Data",
		},
		{
			"generic fallback",
			&testutil.Console{Name: "", TaskTypes: nil},
			"Task console",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ObjectName(tt.obj))
		})
	}
}

func TestObjectNameNil(t *testing.T) {
	assert.Equal(t, "Task console", ObjectName(nil))
}

func TestElementName(t *testing.T) {
	tests := []struct {
		name string
		el   *testutil.Element
		want string
	}{
		{"label wins", &testutil.Element{EID: "x", Text: "Host Game", AltText: "alt"}, "Host Game"},
		{"secondary label", &testutil.Element{EID: "x", AltText: "JoinGame"}, "Join Game"},
		{"identifier fallback", &testutil.Element{EID: "ConfirmButton"}, "Confirm Button"},
		{"placeholder", &testutil.Element{}, "Unlabeled control"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ElementName(tt.el))
		})
	}
}

func TestElementNameNil(t *testing.T) {
	assert.Equal(t, "Unlabeled control", ElementName(nil))
}
