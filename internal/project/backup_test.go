package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/panelwright/wallplan/internal/model"
)

func TestExportAndImportAllData(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "backup.json")

	cfg := model.DefaultAppConfig()
	cfg.DefaultThickness = 150.0

	cat := model.DefaultCatalog()
	leftovers := []model.Leftover{
		model.NewLeftover(100, 650, 550, model.EdgeCut45, model.EdgeStraight),
	}

	if err := ExportAllData(path, cfg, cat, leftovers); err != nil {
		t.Fatalf("ExportAllData failed: %v", err)
	}

	backup, err := ImportAllData(path)
	if err != nil {
		t.Fatalf("ImportAllData failed: %v", err)
	}

	if backup.Version != "1.0.0" {
		t.Errorf("expected version 1.0.0, got %s", backup.Version)
	}
	if backup.CreatedAt == "" {
		t.Error("expected non-empty CreatedAt")
	}
	if backup.Config.DefaultThickness != 150.0 {
		t.Errorf("expected DefaultThickness=150.0, got %f", backup.Config.DefaultThickness)
	}
	if len(backup.Catalog.Products) != len(cat.Products) {
		t.Errorf("expected %d catalog products, got %d", len(cat.Products), len(backup.Catalog.Products))
	}
	if len(backup.Leftovers) != 1 {
		t.Fatalf("expected 1 leftover, got %d", len(backup.Leftovers))
	}
	if backup.Leftovers[0].LeftEdge != model.EdgeCut45 {
		t.Errorf("expected mitred left edge, got %s", backup.Leftovers[0].LeftEdge)
	}
}

func TestImportAllDataMissingFile(t *testing.T) {
	_, err := ImportAllData(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestImportAllDataInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(path, []byte("{not json}"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := ImportAllData(path)
	if err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

func TestImportAllDataMissingVersion(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "noversion.json")
	data := []byte(`{"config":{"default_thickness":100}}`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	_, err := ImportAllData(path)
	if err == nil {
		t.Fatal("expected error for missing version")
	}
}

func TestExportAllDataCreatesDirectories(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deep", "nested", "backup.json")

	cfg := model.DefaultAppConfig()
	if err := ExportAllData(path, cfg, model.Catalog{}, nil); err != nil {
		t.Fatalf("ExportAllData should create parent dirs: %v", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatal("backup file was not created")
	}
}

func TestImportAllDataNilSlices(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "backup.json")
	data := []byte(`{"version":"1.0.0","created_at":"2026-01-01T00:00:00Z","config":{"recent_projects":null},"leftovers":null}`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	backup, err := ImportAllData(path)
	if err != nil {
		t.Fatalf("ImportAllData failed: %v", err)
	}
	if backup.Config.RecentProjects == nil {
		t.Error("RecentProjects should not be nil after import")
	}
	if backup.Leftovers == nil {
		t.Error("Leftovers should not be nil after import")
	}
	if backup.Catalog.Products == nil {
		t.Error("Catalog.Products should not be nil after import")
	}
}
