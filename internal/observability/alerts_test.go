package observability

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

type alertRule struct {
	Alert       string            `yaml:"alert"`
	Expr        string            `yaml:"expr"`
	For         string            `yaml:"for"`
	Labels      map[string]string `yaml:"labels"`
	Annotations map[string]string `yaml:"annotations"`
}

type ruleFile struct {
	Groups []struct {
		Name  string      `yaml:"name"`
		Rules []alertRule `yaml:"rules"`
	} `yaml:"groups"`
}

func repoPath(parts ...string) string {
	return filepath.Join(append([]string{"..", ".."}, parts...)...)
}

// runbookAnchors returns the link anchors of the second level headings.
func runbookAnchors(t *testing.T, path string) map[string]bool {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open runbook: %v", err)
	}
	defer f.Close()

	anchors := map[string]bool{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		heading, ok := strings.CutPrefix(scanner.Text(), "## ")
		if !ok {
			continue
		}
		anchors[strings.ReplaceAll(strings.ToLower(strings.TrimSpace(heading)), " ", "-")] = true
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("read runbook: %v", err)
	}
	return anchors
}

func TestAlertRulesReferenceExportedSeriesAndRunbook(t *testing.T) {
	data, err := os.ReadFile(repoPath("deploy", "prometheus", "alerts", "billdesk.yml"))
	if err != nil {
		t.Fatalf("read alert rules: %v", err)
	}
	var file ruleFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		t.Fatalf("parse alert rules: %v", err)
	}
	anchors := runbookAnchors(t, repoPath("docs", "runbook.md"))

	want := map[string]struct {
		severity string
		series   string
	}{
		"HighErrorRate": {"critical", "billdesk_http_requests_total"},
		"GatewayErrors": {"warning", "billdesk_gateway_operations_total"},
		"JobFailures":   {"warning", "billdesk_jobs_failures_total"},
	}

	seen := 0
	for _, group := range file.Groups {
		for _, rule := range group.Rules {
			w, ok := want[rule.Alert]
			if !ok {
				t.Fatalf("unexpected alert %q in group %q", rule.Alert, group.Name)
			}
			seen++
			if rule.Labels["severity"] != w.severity {
				t.Errorf("%s: severity %q, want %q", rule.Alert, rule.Labels["severity"], w.severity)
			}
			if !strings.Contains(rule.Expr, w.series) {
				t.Errorf("%s: expression does not use %s", rule.Alert, w.series)
			}
			if rule.For == "" || rule.Annotations["summary"] == "" {
				t.Errorf("%s: hold duration and summary are required", rule.Alert)
			}
			doc, anchor, found := strings.Cut(rule.Annotations["runbook"], "#")
			if !found || doc != "docs/runbook.md" || !anchors[anchor] {
				t.Errorf("%s: runbook link %q has no matching runbook section", rule.Alert, rule.Annotations["runbook"])
			}
		}
	}
	if seen != len(want) {
		t.Fatalf("expected %d alerts, found %d", len(want), seen)
	}
}
