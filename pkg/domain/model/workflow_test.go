package model_test

import (
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/m-mizutani/monogate/pkg/domain/model"
)

func TestTriggers_PathFilters(t *testing.T) {
	tests := []struct {
		name     string
		triggers model.Triggers
		want     []string
	}{
		{
			name: "pull_request paths preferred over push",
			triggers: model.Triggers{
				Push:        &model.Trigger{Paths: []string{"push/a/**"}},
				PullRequest: &model.Trigger{Paths: []string{"pr/a/**"}},
			},
			want: []string{"pr/a/**"},
		},
		{
			name: "falls back to push when pull_request has no paths",
			triggers: model.Triggers{
				Push:        &model.Trigger{Paths: []string{"push/a/**"}},
				PullRequest: &model.Trigger{Branches: []string{"main"}},
			},
			want: []string{"push/a/**"},
		},
		{
			name: "declared empty pull_request list does not fall through",
			triggers: model.Triggers{
				Push:        &model.Trigger{Paths: []string{"push/a/**"}},
				PullRequest: &model.Trigger{Paths: []string{}},
			},
			want: []string{},
		},
		{
			name:     "no triggers at all",
			triggers: model.Triggers{},
			want:     nil,
		},
		{
			name: "branch-only triggers yield nil",
			triggers: model.Triggers{
				Push: &model.Trigger{Branches: []string{"main"}},
			},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.triggers.PathFilters()
			if len(got) != len(tt.want) {
				t.Fatalf("PathFilters() = %v, want %v", got, tt.want)
			}
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("PathFilters() nil-ness = %v, want %v", got == nil, tt.want == nil)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("PathFilters()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestTriggers_HasPathFilter(t *testing.T) {
	triggers := model.Triggers{
		PullRequest: &model.Trigger{Paths: []string{"services/foo/**", "packages/bar/**"}},
	}

	if !triggers.HasPathFilter("services/foo/**") {
		t.Error("expected services/foo/** to be listed")
	}
	if triggers.HasPathFilter("services/baz/**") {
		t.Error("did not expect services/baz/** to be listed")
	}
}

func TestWorkflow_DecodeYAML(t *testing.T) {
	// The unquoted "on" key must decode as a mapping key, not a boolean.
	doc := []byte(`name: CI
on:
  pull_request:
    paths:
      - services/foo/**
  push:
    branches:
      - main
    paths:
      - services/foo/**
      - packages/bar/**
`)

	var wf model.Workflow
	if err := yaml.Unmarshal(doc, &wf); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if wf.Name != "CI" {
		t.Errorf("Name = %q, want %q", wf.Name, "CI")
	}
	if wf.On.PullRequest == nil {
		t.Fatal("pull_request trigger not decoded")
	}
	if got := wf.On.PathFilters(); len(got) != 1 || got[0] != "services/foo/**" {
		t.Errorf("PathFilters() = %v, want [services/foo/**]", got)
	}
}
