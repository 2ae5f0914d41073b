package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gentrystinson/cabquote/internal/model"
)

// RoomEntry pairs a room name with its record in a project file.
type RoomEntry struct {
	Name string           `json:"name" yaml:"name"`
	Data model.RoomRecord `json:"data" yaml:"data"`
}

// File is the on-disk form of a working project: the room list in order
// plus the project-wide settings. Supported extensions are .json, .yaml and
// .yml.
type File struct {
	Name     string         `json:"name" yaml:"name"`
	Rooms    []RoomEntry    `json:"rooms" yaml:"rooms"`
	Settings model.Settings `json:"settings" yaml:"settings"`
}

// ToFile snapshots a project into its file form.
func ToFile(p *model.Project) File {
	f := File{Name: p.Name, Settings: p.Settings}
	for _, room := range p.Rooms {
		f.Rooms = append(f.Rooms, RoomEntry{Name: room.Name, Data: room.Record()})
	}
	return f
}

// ToProject rebuilds a project from its file form. Empty files come back as
// a fresh single-room project.
func (f File) ToProject() *model.Project {
	p := &model.Project{Name: f.Name, Settings: f.Settings}
	for i, entry := range f.Rooms {
		name := strings.TrimSpace(entry.Name)
		if name == "" {
			name = fmt.Sprintf("Room %d", i+1)
		}
		p.Rooms = append(p.Rooms, model.RoomFromRecord(name, entry.Data))
	}
	if len(p.Rooms) == 0 {
		p.Rooms = []*model.Room{model.NewRoom("Room 1")}
	}
	if p.Settings.TaxType == "" {
		p.Settings.TaxType = model.TaxNone
	}
	if p.Settings.InstallationType == "" {
		p.Settings.InstallationType = model.InstallSelf
	}
	return p
}

// SaveProject writes a project file; the format follows the extension.
func SaveProject(path string, p *model.Project) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f := ToFile(p)

	var data []byte
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(f)
	default:
		data, err = json.MarshalIndent(f, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("encode project file: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// LoadProject reads a project file; the format follows the extension.
func LoadProject(path string) (*model.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f File
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &f)
	default:
		err = json.Unmarshal(data, &f)
	}
	if err != nil {
		return nil, fmt.Errorf("parse project file %s: %w", path, err)
	}
	return f.ToProject(), nil
}
