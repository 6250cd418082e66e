package persist

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type testData struct {
	Name  string `json:"name" yaml:"name"`
	Value int    `json:"value" yaml:"value"`
}

func TestSaveAndLoad(t *testing.T) {
	for _, name := range []string{"report.json", "report.yaml", "report.yml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)

			original := testData{Name: "porter", Value: 42}
			if err := SaveAtomic(path, original); err != nil {
				t.Fatalf("SaveAtomic failed: %v", err)
			}

			var loaded testData
			if err := Load(path, &loaded); err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if loaded != original {
				t.Errorf("loaded = %+v, want %+v", loaded, original)
			}
		})
	}
}

func TestFormatFollowsExtension(t *testing.T) {
	dir := t.TempDir()
	v := testData{Name: "porter", Value: 1}

	jsonPath := filepath.Join(dir, "out.json")
	yamlPath := filepath.Join(dir, "out.yaml")
	if err := SaveAtomic(jsonPath, v); err != nil {
		t.Fatal(err)
	}
	if err := SaveAtomic(yamlPath, v); err != nil {
		t.Fatal(err)
	}

	data, _ := os.ReadFile(jsonPath)
	if !strings.HasPrefix(string(data), "{") {
		t.Errorf("json file = %q, want a JSON object", data)
	}
	data, _ = os.ReadFile(yamlPath)
	if !strings.HasPrefix(string(data), "name: porter") {
		t.Errorf("yaml file = %q, want YAML mapping", data)
	}
}

func TestSaveCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deep", "test.json")

	if err := SaveAtomic(path, testData{Name: "test"}); err != nil {
		t.Fatalf("SaveAtomic with nested dirs failed: %v", err)
	}
	if !Exists(path) {
		t.Error("file should exist after save")
	}
}

func TestLoadMissingFile(t *testing.T) {
	data := testData{Name: "default"}
	if err := Load("/nonexistent/path/file.yaml", &data); err != nil {
		t.Errorf("Load of missing file should not error, got: %v", err)
	}
	if data.Name != "default" {
		t.Error("data should be untouched when file is missing")
	}
}

func TestLoadKeepsAbsentKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	os.WriteFile(path, []byte("value: 7\n"), 0644)

	data := testData{Name: "default", Value: 1}
	if err := Load(path, &data); err != nil {
		t.Fatal(err)
	}
	if data.Name != "default" || data.Value != 7 {
		t.Errorf("loaded = %+v, want {default 7}", data)
	}
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	os.WriteFile(path, []byte("{not json"), 0644)

	var data testData
	if err := Load(path, &data); err == nil {
		t.Error("Load of corrupt file should error")
	}
}

func TestSaveAtomicNoPartialWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.json")

	if err := SaveAtomic(path, testData{Name: "original", Value: 1}); err != nil {
		t.Fatal(err)
	}
	if err := SaveAtomic(path, testData{Name: "updated", Value: 2}); err != nil {
		t.Fatal(err)
	}

	if Exists(path + ".tmp") {
		t.Error(".tmp file should not exist after successful save")
	}

	var loaded testData
	if err := Load(path, &loaded); err != nil {
		t.Fatal(err)
	}
	if loaded.Name != "updated" || loaded.Value != 2 {
		t.Errorf("loaded = %+v, want {updated, 2}", loaded)
	}
}
