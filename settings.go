package main

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/buger/jsonparser"
)

// keep settings generic, type-convert on the fly. values are clamped on
// the way in; the render and HV loops can trust whatever they read.
type configSettings struct {
	mu       *sync.RWMutex
	settings map[string]interface{}
}

func defaultSettings() configSettings {
	s := make(map[string]interface{})

	// setting the type here makes the conversion "automatic" later
	s[sFadeSteps] = 50
	s[sScrollSteps] = 4
	s[sScrollback] = true
	s[s24Hour] = true
	s[sBlankZero] = false
	s[sDayBlanking] = int(blankNever)
	s[sBlankStart] = 0
	s[sBlankEnd] = 7
	s[sHVTarget] = 180
	s[sHVSmooth] = 8
	s[sDimSmooth] = 16
	s[sNeedsCal] = true
	s[sCalCheck] = false
	s[sPWMOnTime] = pwmOnDefault
	s[sPWMTopTime] = pwmTopMin
	s[sSimulated] = true
	s[sButtonSim] = ""
	s[sI2CBus] = 1
	s[sRTCAddress] = 0x68
	s[sLogFile] = "/var/log/nixie6.log"
	s[sDevMode] = false
	s[sStateFile] = "/etc/default/nixie6/state.json"
	s[sListen] = ":8080"
	s[sSkipHTTP] = false

	return configSettings{mu: &sync.RWMutex{}, settings: s}
}

// clampRanges pulls every bounded value back into its valid range. no
// errors: a bad config file gets the nearest legal clock, not a crash.
func (s configSettings) clampRanges() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clamp := func(key string, lo, hi int) {
		if v, ok := s.settings[key].(int); ok {
			s.settings[key] = clampInt(v, lo, hi)
		}
	}
	clamp(sFadeSteps, fadeStepsMin, fadeStepsMax)
	clamp(sScrollSteps, scrollStepsMin, scrollStepsMax)
	clamp(sHVTarget, hvTargetMin, hvTargetMax)
	clamp(sHVSmooth, 1, 64)
	clamp(sDimSmooth, 1, 64)
	clamp(sBlankStart, 0, 23)
	clamp(sBlankEnd, 0, 23)
	clamp(sPWMOnTime, pwmPulseMin, pwmPulseMax)
	clamp(sPWMTopTime, pwmTopMin, pwmTopMax)

	// snap the HV target onto its 5V grid
	if v, ok := s.settings[sHVTarget].(int); ok {
		s.settings[sHVTarget] = v - v%hvTargetStep
	}
}

func (s configSettings) settingsFromJSON(data []byte) error {
	s.mu.Lock()
	for k, initVal := range s.settings {
		var err error
		switch initVal.(type) {
		case int:
			var val int64
			val, err = jsonparser.GetInt(data, k)
			if err == nil {
				s.settings[k] = int(val)
			}
		case bool:
			var bVal bool
			bVal, err = jsonparser.GetBoolean(data, k)
			if err != nil {
				// also accept "true"/"false" strings
				str, err2 := jsonparser.GetString(data, k)
				if err2 == nil {
					switch strings.ToLower(str) {
					case "true":
						bVal, err = true, nil
					case "false":
						bVal, err = false, nil
					}
				}
			}
			if err == nil {
				s.settings[k] = bVal
			}
		case string:
			var str string
			str, err = jsonparser.GetString(data, k)
			if err == nil {
				s.settings[k] = str
			}
		case time.Duration:
			var str string
			str, err = jsonparser.GetString(data, k)
			if err == nil {
				var d time.Duration
				if d, err = time.ParseDuration(str); err == nil {
					s.settings[k] = d
				}
			}
		default:
			err = fmt.Errorf("bad type for %s: %T", k, initVal)
		}
		// missing keys keep their defaults
		_ = err
	}
	s.mu.Unlock()
	s.clampRanges()
	return nil
}

// initSettings loads defaults, the config file (if present), then the
// state file with the values the menu persisted last.
func initSettings(configFile string) configSettings {
	s := defaultSettings()

	if data, err := ioutil.ReadFile(configFile); err == nil {
		log.Printf("Reading configuration from '%s'", configFile)
		s.settingsFromJSON(data)
	} else {
		log.Printf("No config at '%s', using defaults", configFile)
	}

	if data, err := ioutil.ReadFile(s.GetString(sStateFile)); err == nil {
		s.settingsFromJSON(data)
	}

	return s
}

// persistedKeys are the menu-editable values written to the state file,
// the stand-in for the original's EEPROM block.
var persistedKeys = []string{
	sFadeSteps, sScrollSteps, sScrollback, s24Hour, sBlankZero,
	sDayBlanking, sBlankStart, sBlankEnd, sHVTarget, sNeedsCal,
	sPWMOnTime, sPWMTopTime,
}

func (s configSettings) saveState() error {
	s.mu.RLock()
	out := make(map[string]interface{}, len(persistedKeys))
	for _, k := range persistedKeys {
		out[k] = s.settings[k]
	}
	path := ""
	if v, ok := s.settings[sStateFile].(string); ok {
		path = v
	}
	s.mu.RUnlock()

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	return ioutil.WriteFile(path, data, 0644)
}

func (s configSettings) GetString(key string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if v, ok := s.settings[key].(string); ok {
		return v
	}
	return ""
}

func (s configSettings) GetBool(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if v, ok := s.settings[key].(bool); ok {
		return v
	}
	return false
}

func (s configSettings) GetInt(key string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if v, ok := s.settings[key].(int); ok {
		return v
	}
	return 0
}

func (s configSettings) GetDuration(key string) time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if v, ok := s.settings[key].(time.Duration); ok {
		return v
	}
	return -1
}

// SetInt stores a value and re-clamps; used by the menu and the HTTP
// config service.
func (s configSettings) SetInt(key string, val int) {
	s.mu.Lock()
	s.settings[key] = val
	s.mu.Unlock()
	s.clampRanges()
}

func (s configSettings) SetBool(key string, val bool) {
	s.mu.Lock()
	s.settings[key] = val
	s.mu.Unlock()
}

func (s configSettings) Dump() {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for k, v := range s.settings {
		log.Printf("%s : %T: %v", k, v, v)
	}
}
