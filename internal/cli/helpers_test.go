package cli

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleMovies = `title,year,director,main_actor,genres,rating
The Godfather,1972,Francis Ford Coppola,Marlon Brando,"Crime, Drama",9.2
Inception,2010,Christopher Nolan,Leonardo DiCaprio,"Action, Sci-Fi",8.8
Alien,1979,Ridley Scott,Sigourney Weaver,"Horror, Sci-Fi",8.5
Heat,1995,Michael Mann,Al Pacino,"Crime, Thriller",8.3
Spirited Away,2001,Hayao Miyazaki,Rumi Hiiragi,"Animation, Fantasy",8.6
Amelie,2001,Jean-Pierre Jeunet,Audrey Tautou,"Comedy, Romance",8.3
`

const sampleConfig = `version: 1
dataset:
  path: "data/movies.csv"
output:
  path: "data/questions.csv"
generator:
  seed: 42
  count: 0
  attributes: [year, actor, genre, director]
`

// writeProject lays out a project directory with the standard config and a
// six-movie dataset. It returns the config path.
func writeProject(t *testing.T, dir string) string {
	t.Helper()
	return writeProjectFiles(t, dir, sampleConfig, sampleMovies)
}

// writeProjectFiles writes a config file and, when movies is non-empty, a
// dataset at data/movies.csv.
func writeProjectFiles(t *testing.T, dir, configBody, movies string) string {
	t.Helper()
	configPath := filepath.Join(dir, ".reelquiz", "config.yml")
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		t.Fatalf("create config dir: %v", err)
	}
	if err := os.WriteFile(configPath, []byte(configBody), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if movies != "" {
		datasetPath := filepath.Join(dir, "data", "movies.csv")
		if err := os.MkdirAll(filepath.Dir(datasetPath), 0o755); err != nil {
			t.Fatalf("create data dir: %v", err)
		}
		if err := os.WriteFile(datasetPath, []byte(movies), 0o644); err != nil {
			t.Fatalf("write dataset: %v", err)
		}
	}
	return configPath
}

// chdir switches the working directory for the test and restores it after.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("get wd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
