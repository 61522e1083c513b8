package branch

import "testing"

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		branch string
		want   Parsed
	}{
		{
			name:   "feature prefix with ticket",
			branch: "feature/JIRA-123-add-new-feature",
			want:   Parsed{Prefix: PrefixFeature, Ticket: "JIRA-123", Description: "add new feature"},
		},
		{
			name:   "bugfix prefix",
			branch: "bugfix/TICKET-456-fix-important-bug",
			want:   Parsed{Prefix: PrefixBugfix, Ticket: "TICKET-456", Description: "fix important bug"},
		},
		{
			name:   "hotfix with underscores",
			branch: "hotfix/XYZ-789-urgent_fix",
			want:   Parsed{Prefix: PrefixHotfix, Ticket: "XYZ-789", Description: "urgent fix"},
		},
		{
			name:   "fix prefix",
			branch: "fix/AB1-2-typo",
			want:   Parsed{Prefix: PrefixFix, Ticket: "AB1-2", Description: "typo"},
		},
		{
			name:   "no prefix",
			branch: "JIRA-123-standalone",
			want:   Parsed{Ticket: "JIRA-123", Description: "standalone"},
		},
		{
			name:   "ticket only",
			branch: "JIRA-123",
			want:   Parsed{Ticket: "JIRA-123"},
		},
		{
			name:   "prefix and ticket only",
			branch: "feature/JIRA-123",
			want:   Parsed{Prefix: PrefixFeature, Ticket: "JIRA-123"},
		},
		{
			name:   "underscore after ticket",
			branch: "PROJ-9_do_things",
			want:   Parsed{Ticket: "PROJ-9", Description: "do things"},
		},
		{
			name:   "repeated separators collapse",
			branch: "feature/JIRA-1--double--dash__and_under",
			want:   Parsed{Prefix: PrefixFeature, Ticket: "JIRA-1", Description: "double dash and under"},
		},
		{
			name:   "main",
			branch: "main",
			want:   Parsed{Description: "main"},
		},
		{
			name:   "no ticket with separators",
			branch: "my-random-branch",
			want:   Parsed{Description: "my random branch"},
		},
		{
			name:   "prefix without ticket",
			branch: "feature/some-feature",
			want:   Parsed{Prefix: PrefixFeature, Description: "some feature"},
		},
		{
			name:   "lowercase ticket is not a ticket",
			branch: "feature/jira-123-lowercase",
			want:   Parsed{Prefix: PrefixFeature, Description: "jira 123 lowercase"},
		},
		{
			name:   "single letter key is not a ticket",
			branch: "A-1-short",
			want:   Parsed{Description: "A 1 short"},
		},
		{
			name:   "ticket not at start",
			branch: "feature/add-JIRA-123",
			want:   Parsed{Prefix: PrefixFeature, Description: "add JIRA 123"},
		},
		{
			name:   "ticket followed by non-separator",
			branch: "JIRA-123x-thing",
			want:   Parsed{Description: "JIRA 123x thing"},
		},
		{
			name:   "unknown prefix kept",
			branch: "chore/JIRA-5-cleanup",
			want:   Parsed{Description: "chore/JIRA 5 cleanup"},
		},
		{
			name:   "prefix match is anchored",
			branch: "bugfixes/JIRA-5-cleanup",
			want:   Parsed{Description: "bugfixes/JIRA 5 cleanup"},
		},
		{
			name:   "empty",
			branch: "",
			want:   Parsed{},
		},
		{
			name:   "detached head",
			branch: "HEAD",
			want:   Parsed{Description: "HEAD"},
		},
		{
			name:   "numbers after ticket stay in description",
			branch: "ABC-123-456-foo",
			want:   Parsed{Ticket: "ABC-123", Description: "456 foo"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Parse(tt.branch)
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.branch, got, tt.want)
			}
		})
	}
}

func TestStripPrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in         string
		wantPrefix Prefix
		wantRest   string
	}{
		{"feature/x", PrefixFeature, "x"},
		{"bugfix/x", PrefixBugfix, "x"},
		{"hotfix/x", PrefixHotfix, "x"},
		{"fix/x", PrefixFix, "x"},
		{"feature", PrefixNone, "feature"},
		{"release/1.0", PrefixNone, "release/1.0"},
		{"feature/", PrefixFeature, ""},
	}

	for _, tt := range tests {
		gotPrefix, gotRest := StripPrefix(tt.in)
		if gotPrefix != tt.wantPrefix || gotRest != tt.wantRest {
			t.Errorf("StripPrefix(%q) = (%q, %q), want (%q, %q)", tt.in, gotPrefix, gotRest, tt.wantPrefix, tt.wantRest)
		}
	}
}

func TestScanTicket(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in         string
		wantTicket string
		wantRest   string
	}{
		{"JIRA-123-rest", "JIRA-123", "rest"},
		{"JIRA-123_rest", "JIRA-123", "rest"},
		{"JIRA-123", "JIRA-123", ""},
		{"JIRA-123-", "JIRA-123", ""},
		{"JIRA-", "", "JIRA-"},
		{"JIRA", "", "JIRA"},
		{"J2-7", "J2-7", ""},
		{"2J-7", "", "2J-7"},
		{"Jira-7", "", "Jira-7"},
		{"JIRA-12/x", "", "JIRA-12/x"},
	}

	for _, tt := range tests {
		gotTicket, gotRest := ScanTicket(tt.in)
		if gotTicket != tt.wantTicket || gotRest != tt.wantRest {
			t.Errorf("ScanTicket(%q) = (%q, %q), want (%q, %q)", tt.in, gotTicket, gotRest, tt.wantTicket, tt.wantRest)
		}
	}
}

func TestIsTicket(t *testing.T) {
	t.Parallel()

	valid := []string{"JIRA-1", "AB-99", "A1-2", "ABC123-4567"}
	for _, s := range valid {
		if !IsTicket(s) {
			t.Errorf("IsTicket(%q) = false, want true", s)
		}
	}

	invalid := []string{"", "A-1", "jira-1", "JIRA-", "JIRA-1x", "-1", "JIRA_1"}
	for _, s := range invalid {
		if IsTicket(s) {
			t.Errorf("IsTicket(%q) = true, want false", s)
		}
	}
}

func TestNormalizeSeparators(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"":                  "",
		"plain":             "plain",
		"a-b_c":             "a b c",
		"--lead-and-trail_": "lead and trail",
		"a - b":             "a b",
	}
	for in, want := range tests {
		if got := NormalizeSeparators(in); got != want {
			t.Errorf("NormalizeSeparators(%q) = %q, want %q", in, got, want)
		}
	}
}
