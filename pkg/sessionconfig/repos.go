// Copyright (c) 2019-2026 the Workbench authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package sessionconfig

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/ini.v1"
)

// reposURLKey is the key carrying a repository's url inside its section.
const reposURLKey = "url"

// ParseReposConfig reads an INI repository-mirror file and encodes it as
// name|value pairs joined by "|". A missing file yields an empty string and
// no error; an unreadable or malformed file, or one without a CRAN entry,
// yields an empty string and an error the caller downgrades to a warning.
func ParseReposConfig(path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("unable to open repos file %s: %w", path, err)
	}

	f, err := ini.Load(path)
	if err != nil {
		return "", fmt.Errorf("error reading %s: %w", path, err)
	}

	var pairs []string
	hasCRAN := false
	appendPair := func(name, value string) {
		if name == "CRAN" {
			hasCRAN = true
		}
		pairs = append(pairs, name+"|"+value)
	}

	for _, section := range f.Sections() {
		if section.Name() == ini.DefaultSection {
			// bare name=url lines at the top of the file
			for _, key := range section.Keys() {
				appendPair(key.Name(), key.Value())
			}
			continue
		}
		value := ""
		if key, err := section.GetKey(reposURLKey); err == nil {
			value = key.Value()
		} else if keys := section.Keys(); len(keys) > 0 {
			value = keys[0].Value()
		}
		appendPair(section.Name(), value)
	}

	if !hasCRAN {
		return "", fmt.Errorf("repos file %s is missing CRAN entry", path)
	}

	return strings.Join(pairs, "|"), nil
}
