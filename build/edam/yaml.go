package edam

import "gopkg.in/yaml.v3"

func decodeYAML(_ string, data []byte) (*Project, error) {
	var p Project
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	return &p, nil
}
