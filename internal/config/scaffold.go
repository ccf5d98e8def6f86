package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const configTemplate = `version: 1

dataset:
  path: %q
  # filter: 'row.rating >= 7.0 && row.year >= 1990'

output:
  path: %q

generator:
  seed: 42
  count: 0
  attributes: [year, actor, genre, director]
`

const sampleDataset = `title,year,director,main_actor,genres,rating
The Godfather,1972,Francis Ford Coppola,Marlon Brando,"Crime, Drama",9.2
Inception,2010,Christopher Nolan,Leonardo DiCaprio,"Action, Sci-Fi",8.8
Alien,1979,Ridley Scott,Sigourney Weaver,"Horror, Sci-Fi",8.5
Heat,1995,Michael Mann,Al Pacino,"Crime, Thriller",8.3
Spirited Away,2001,Hayao Miyazaki,Rumi Hiiragi,"Animation, Fantasy",8.6
Amelie,2001,Jean-Pierre Jeunet,Audrey Tautou,"Comedy, Romance",8.3
Mad Max: Fury Road,2015,George Miller,Tom Hardy,"Action, Adventure",8.1
Parasite,2019,Bong Joon-ho,Song Kang-ho,"Thriller, Drama",8.5
The Matrix,1999,Lana Wachowski,Keanu Reeves,"Action, Sci-Fi",8.7
Casablanca,1942,Michael Curtiz,Humphrey Bogart,"Drama, Romance",8.5
Jaws,1975,Steven Spielberg,Roy Scheider,"Thriller, Adventure",8.1
Arrival,2016,Denis Villeneuve,Amy Adams,"Sci-Fi, Drama",7.9
`

// ScaffoldResult reports what Scaffold wrote.
type ScaffoldResult struct {
	ConfigPath   string
	DatasetPath  string
	WroteDataset bool
}

// Scaffold writes a starter config plus a sample dataset. The config must
// not already exist; an existing dataset file is left untouched. An empty
// datasetPath selects the default location.
func Scaffold(configPath, datasetPath string) (ScaffoldResult, error) {
	if configPath == "" {
		return ScaffoldResult{}, fmt.Errorf("config path is required")
	}
	if datasetPath == "" {
		datasetPath = DefaultDatasetPath
	}
	result := ScaffoldResult{ConfigPath: configPath}

	if info, err := os.Stat(configPath); err == nil {
		if info.IsDir() {
			return ScaffoldResult{}, fmt.Errorf("config path %q is a directory", configPath)
		}
		return ScaffoldResult{}, fmt.Errorf("config file already exists at %q", configPath)
	} else if !os.IsNotExist(err) {
		return ScaffoldResult{}, fmt.Errorf("stat config file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return ScaffoldResult{}, fmt.Errorf("create config dir: %w", err)
	}
	body := fmt.Sprintf(configTemplate, filepath.ToSlash(datasetPath), DefaultOutputPath)
	if err := os.WriteFile(configPath, []byte(body), 0o644); err != nil {
		return ScaffoldResult{}, fmt.Errorf("write config file: %w", err)
	}

	target := datasetPath
	if !filepath.IsAbs(target) {
		target = filepath.Join(BaseDirFromConfigPath(configPath), filepath.FromSlash(datasetPath))
	}
	result.DatasetPath = target

	if info, err := os.Stat(target); err == nil {
		if info.IsDir() {
			return ScaffoldResult{}, fmt.Errorf("dataset path %q is a directory", target)
		}
		return result, nil
	} else if !os.IsNotExist(err) {
		return ScaffoldResult{}, fmt.Errorf("stat dataset file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return ScaffoldResult{}, fmt.Errorf("create data dir: %w", err)
	}
	if err := os.WriteFile(target, []byte(sampleDataset), 0o644); err != nil {
		return ScaffoldResult{}, fmt.Errorf("write dataset file: %w", err)
	}
	result.WroteDataset = true
	return result, nil
}
