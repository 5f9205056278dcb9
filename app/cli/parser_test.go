package cli

import (
	"reflect"
	"testing"
)

// MockRegistryChecker provides a mock implementation for testing.
type MockRegistryChecker struct {
	KnownCommands map[string]bool
}

// CommandExists checks if a command name exists in the mock registry.
func (m MockRegistryChecker) CommandExists(name string) bool {
	_, exists := m.KnownCommands[name]
	return exists
}

func TestParseCommandLineArgs(t *testing.T) {
	mockRegistry := MockRegistryChecker{
		KnownCommands: map[string]bool{
			"list":        true,
			"open":        true,
			"env":         true,
			"config set":  true, // multi-word
			"config get":  true,
			"config list": true,
		},
	}

	testCases := []struct {
		name     string
		args     []string
		expected CommandArgs
	}{
		{
			name: "No Args",
			args: []string{},
			expected: CommandArgs{
				Variables: []string{},
				Flags:     map[string]string{},
				BoolFlags: map[string]bool{},
				Errors:    []error{},
			},
		},
		{
			name: "Version Flag",
			args: []string{"--version"},
			expected: CommandArgs{
				VersionRequested: true,
				Variables:        []string{},
				Flags:            map[string]string{},
				BoolFlags:        map[string]bool{},
				Errors:           []error{},
			},
		},
		{
			name: "General Help Flag",
			args: []string{"--help"},
			expected: CommandArgs{
				HelpRequested: true,
				Variables:     []string{},
				Flags:         map[string]string{},
				BoolFlags:     map[string]bool{"help": true},
				Errors:        []error{},
			},
		},
		{
			name: "Command Specific Help",
			args: []string{"open", "-h"},
			expected: CommandArgs{
				CommandName:   "open",
				HelpRequested: true,
				Variables:     []string{},
				Flags:         map[string]string{},
				BoolFlags:     map[string]bool{"h": true},
				Errors:        []error{},
			},
		},
		{
			name: "Multi-word Command Specific Help",
			args: []string{"config", "set", "--help"},
			expected: CommandArgs{
				CommandName:   "config set",
				HelpRequested: true,
				Variables:     []string{},
				Flags:         map[string]string{},
				BoolFlags:     map[string]bool{"help": true},
				Errors:        []error{},
			},
		},
		{
			name: "Simple Command",
			args: []string{"env"},
			expected: CommandArgs{
				CommandName: "env",
				Variables:   []string{},
				Flags:       map[string]string{},
				BoolFlags:   map[string]bool{},
				Errors:      []error{},
			},
		},
		{
			name: "Command with Variables and Flags",
			args: []string{"open", "term", "store", "--mode=print", "--debug"},
			expected: CommandArgs{
				CommandName: "open",
				Variables:   []string{"term", "store"},
				Flags:       map[string]string{"mode": "print"},
				BoolFlags:   map[string]bool{"debug": true},
				Errors:      []error{},
			},
		},
		{
			name: "Multi-word Command with Variables",
			args: []string{"config", "set", "site.origin", "https://contoso.sharepoint.com"},
			expected: CommandArgs{
				CommandName: "config set",
				Variables:   []string{"site.origin", "https://contoso.sharepoint.com"},
				Flags:       map[string]string{},
				BoolFlags:   map[string]bool{},
				Errors:      []error{},
			},
		},
		{
			name: "Flag with Space Value",
			args: []string{"list", "--version-type", "premise", "search"},
			expected: CommandArgs{
				CommandName: "list",
				Variables:   []string{"search"},
				Flags:       map[string]string{"version-type": "premise"},
				BoolFlags:   map[string]bool{},
				Errors:      []error{},
			},
		},
		{
			name: "Flags Before Command",
			args: []string{"--debug", "list"},
			expected: CommandArgs{
				CommandName: "list",
				Variables:   []string{},
				Flags:       map[string]string{},
				BoolFlags:   map[string]bool{"debug": true},
				Errors:      []error{},
			},
		},
		{
			name: "Single Word Of Multi-word Command",
			args: []string{"config", "colour"},
			expected: CommandArgs{
				Variables: []string{"config", "colour"},
				Flags:     map[string]string{},
				BoolFlags: map[string]bool{},
				Errors:    []error{},
			},
		},
		{
			name: "Combined Short Flags",
			args: []string{"cmd", "-abc", "valueForC"},
			expected: CommandArgs{
				Variables: []string{"cmd"},
				Flags:     map[string]string{"c": "valueForC"},
				BoolFlags: map[string]bool{"a": true, "b": true},
				Errors:    []error{},
			},
		},
		{
			name: "Duplicate Flags",
			args: []string{"list", "--mode=print", "--mode=browser", "-x", "-x"},
			expected: CommandArgs{
				CommandName: "list",
				Variables:   []string{},
				Flags:       map[string]string{"mode": "browser"},
				BoolFlags:   map[string]bool{"x": true},
				Errors:      []error{nil, nil},
			},
		},
		{
			name: "Bare Dash",
			args: []string{"list", "-"},
			expected: CommandArgs{
				CommandName: "list",
				Variables:   []string{},
				Flags:       map[string]string{},
				BoolFlags:   map[string]bool{},
				Errors:      []error{nil},
			},
		},
		{
			name: "Debug Before Filter",
			args: []string{"open", "--debug", "people"},
			expected: CommandArgs{
				CommandName: "open",
				Variables:   []string{"people"},
				Flags:       map[string]string{},
				BoolFlags:   map[string]bool{"debug": true},
				Errors:      []error{},
			},
		},
		{
			name: "Short Help Before Word",
			args: []string{"list", "-h", "site"},
			expected: CommandArgs{
				CommandName:   "list",
				HelpRequested: true,
				Variables:     []string{"site"},
				Flags:         map[string]string{},
				BoolFlags:     map[string]bool{"h": true},
				Errors:        []error{},
			},
		},
		{
			name: "Unknown Command",
			args: []string{"unknowncmd", "arg1"},
			expected: CommandArgs{
				Variables: []string{"unknowncmd", "arg1"},
				Flags:     map[string]string{},
				BoolFlags: map[string]bool{},
				Errors:    []error{},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := ParseCommandLineArgs(tc.args, mockRegistry)

			if !reflect.DeepEqual(actual.RawArgs, tc.args) {
				t.Errorf("RawArgs mismatch: expected %v, got %v", tc.args, actual.RawArgs)
			}
			if actual.CommandName != tc.expected.CommandName {
				t.Errorf("CommandName mismatch: expected %q, got %q", tc.expected.CommandName, actual.CommandName)
			}
			if !reflect.DeepEqual(actual.Variables, tc.expected.Variables) {
				t.Errorf("Variables mismatch: expected %v, got %v", tc.expected.Variables, actual.Variables)
			}
			if !reflect.DeepEqual(actual.Flags, tc.expected.Flags) {
				t.Errorf("Flags mismatch: expected %v, got %v", tc.expected.Flags, actual.Flags)
			}
			if !reflect.DeepEqual(actual.BoolFlags, tc.expected.BoolFlags) {
				t.Errorf("BoolFlags mismatch: expected %v, got %v", tc.expected.BoolFlags, actual.BoolFlags)
			}
			if actual.HelpRequested != tc.expected.HelpRequested {
				t.Errorf("HelpRequested mismatch: expected %t, got %t", tc.expected.HelpRequested, actual.HelpRequested)
			}
			if actual.VersionRequested != tc.expected.VersionRequested {
				t.Errorf("VersionRequested mismatch: expected %t, got %t", tc.expected.VersionRequested, actual.VersionRequested)
			}
			// Only the number of errors is compared.
			if len(actual.Errors) != len(tc.expected.Errors) {
				t.Errorf("Errors length mismatch: expected %d, got %d (Errors: %v)", len(tc.expected.Errors), len(actual.Errors), actual.Errors)
			}
		})
	}
}

// valueRegistry also knows which flags take values, keyed "command flag".
type valueRegistry struct {
	MockRegistryChecker
	values map[string]bool
}

func (r valueRegistry) TakesValue(command, flag string) bool {
	return r.values[command+" "+flag]
}

func TestParseWithValueFlags(t *testing.T) {
	registry := valueRegistry{
		MockRegistryChecker: MockRegistryChecker{KnownCommands: map[string]bool{"open": true, "list": true}},
		values:              map[string]bool{"open mode": true, "open m": true, "list env": true},
	}

	testCases := []struct {
		name      string
		args      []string
		variables []string
		flags     map[string]string
		boolFlags map[string]bool
	}{
		{"Value Flag", []string{"open", "--mode", "print", "people"}, []string{"people"}, map[string]string{"mode": "print"}, map[string]bool{}},
		{"Short Value Flag", []string{"open", "-m", "print", "look"}, []string{"look"}, map[string]string{"m": "print"}, map[string]bool{}},
		{"Undeclared Flag Is Boolean", []string{"open", "--verbose", "people"}, []string{"people"}, map[string]string{}, map[string]bool{"verbose": true}},
		{"Short Group Without Value", []string{"open", "-xv", "look"}, []string{"look"}, map[string]string{}, map[string]bool{"x": true, "v": true}},
		{"Equals Always Sets Value", []string{"open", "--verbose=yes", "look"}, []string{"look"}, map[string]string{"verbose": "yes"}, map[string]bool{}},
		{"Flag Of Another Command", []string{"open", "--env", "premise"}, []string{"premise"}, map[string]string{}, map[string]bool{"env": true}},
		{"Debug Is Never A Value Flag", []string{"list", "--debug", "--env", "premise", "spo"}, []string{"spo"}, map[string]string{"env": "premise"}, map[string]bool{"debug": true}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := ParseCommandLineArgs(tc.args, registry)
			if len(actual.Errors) != 0 {
				t.Fatalf("unexpected errors: %v", actual.Errors)
			}
			if !reflect.DeepEqual(actual.Variables, tc.variables) {
				t.Errorf("Variables mismatch: expected %v, got %v", tc.variables, actual.Variables)
			}
			if !reflect.DeepEqual(actual.Flags, tc.flags) {
				t.Errorf("Flags mismatch: expected %v, got %v", tc.flags, actual.Flags)
			}
			if !reflect.DeepEqual(actual.BoolFlags, tc.boolFlags) {
				t.Errorf("BoolFlags mismatch: expected %v, got %v", tc.boolFlags, actual.BoolFlags)
			}
		})
	}
}

func TestCommandArgsAccessors(t *testing.T) {
	args := CommandArgs{
		Flags:     map[string]string{"m": "print"},
		BoolFlags: map[string]bool{"debug": true},
	}
	if v, ok := args.Flag("mode", "m"); !ok || v != "print" {
		t.Errorf("Flag(mode, m) = %q, %t; want print, true", v, ok)
	}
	if _, ok := args.Flag("site", ""); ok {
		t.Error("Flag(site) should be missing")
	}
	if !args.Bool("debug", "d") {
		t.Error("Bool(debug) should be true")
	}
	if args.Bool("verbose", "") {
		t.Error("Bool(verbose) should be false")
	}
}
