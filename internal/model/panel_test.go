package model

import "testing"

func TestPanelEffectiveWidth(t *testing.T) {
	p := Panel{Kind: PanelFull, Width: 1150}
	if p.EffectiveWidth() != 1150 {
		t.Errorf("expected 1150, got %.1f", p.EffectiveWidth())
	}
	p.ActualWidth = 1130
	if p.EffectiveWidth() != 1130 {
		t.Errorf("expected trimmed width 1130, got %.1f", p.EffectiveWidth())
	}
}

func TestIntersectionInvolves(t *testing.T) {
	in := Intersection{
		X: 100, Y: 200,
		Pairs: []WallPair{
			{Wall1: "a", Wall2: "b", Method: JointCut45},
			{Wall1: "b", Wall2: "c", Method: JointButtIn},
		},
	}
	if !in.Involves("a") || !in.Involves("c") {
		t.Error("expected both outer walls to be involved")
	}
	if in.Involves("d") {
		t.Error("did not expect unrelated wall to be involved")
	}
	methods := in.MethodsFor("b")
	if len(methods) != 2 {
		t.Fatalf("expected 2 methods for shared wall, got %d", len(methods))
	}
}

func TestPlanResultPanelsFor(t *testing.T) {
	r := PlanResult{
		Manifest: []PanelRecord{
			{WallID: "w1", Panel: Panel{Kind: PanelFull, Width: 1150}},
			{WallID: "w2", Panel: Panel{Kind: PanelSide, Width: 200}},
			{WallID: "w1", Panel: Panel{Kind: PanelSide, Width: 300}},
		},
	}
	got := r.PanelsFor("w1")
	if len(got) != 2 {
		t.Fatalf("expected 2 panels for w1, got %d", len(got))
	}
	if got[1].Panel.Width != 300 {
		t.Error("expected manifest order preserved")
	}
}
