package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Actions understood by the component. The host selects one per invocation
// through the "action" field of config.json.
const (
	ActionRun            = "run"
	ActionListCurrencies = "listCurrencies"
)

// DateSettings mirrors the "date_settings" block of the component
// configuration. DateFrom/DateTo are only meaningful for the custom range
// mode and stay raw strings until validated by the service.
type DateSettings struct {
	Dates          string `mapstructure:"dates"`
	DateFrom       string `mapstructure:"dependent_date_from"`
	DateTo         string `mapstructure:"dependent_date_to"`
	CurrentAsToday bool   `mapstructure:"current_as_today"`
}

type CurrencySettings struct {
	SelectedCurrencies []string `mapstructure:"selected_currencies"`
}

// Parameters is the user-supplied part of the component configuration.
type Parameters struct {
	DateSettings DateSettings     `mapstructure:"date_settings"`
	Currencies   CurrencySettings `mapstructure:"currencies"`
	Incremental  bool             `mapstructure:"incremental"`
}

// LoadParameters reads the host-provided config.json and returns the
// requested action together with the run parameters.
func LoadParameters(path string) (string, *Parameters, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")

	if err := v.ReadInConfig(); err != nil {
		return "", nil, fmt.Errorf("failed to read component configuration %s: %w", path, err)
	}

	params := &Parameters{}
	if err := v.UnmarshalKey("parameters", params); err != nil {
		return "", nil, fmt.Errorf("failed to parse component parameters: %w", err)
	}

	action := v.GetString("action")
	if action == "" {
		action = ActionRun
	}

	return action, params, nil
}
