package cmd

import (
	"github.com/etnz/simfolio/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// currencies offered by completion, any ISO 4217 code is accepted.
var currencies = predict.Set{"USD", "EUR", "GBP", "CHF", "JPY", "CLP"}

// Completion describes the command line for shell completion.
func Completion() *complete.Command {
	topics, _ := docs.GetAllTopics()
	topics = append(topics, "readme")

	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"config":   predict.Files("*.toml"),
			"currency": currencies,
			"seed":     predict.Something,
			"v":        predict.Nothing,
			"raw":      predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"between":    {},
			"annualized": {},
			"holdings":   {},
			"report": {
				Flags: map[string]complete.Predictor{
					"json": predict.Nothing,
					"q":    predict.Something,
				},
			},
			"topic": {
				Flags: map[string]complete.Predictor{
					"list": predict.Nothing,
				},
				Args: predict.Set(topics),
			},
			"help":     {},
			"flags":    {},
			"commands": {},
		},
	}
}
