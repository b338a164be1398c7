package cmd

import (
	"github.com/etnz/realrate/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the command line for shell completion.
func Completion() *complete.Command {
	topics, _ := docs.GetAllTopics()
	return &complete.Command{
		Sub: map[string]*complete.Command{
			"rate": {
				Flags: map[string]complete.Predictor{
					"d":         predict.Nothing,
					"currency":  predict.Set{"USD", "EUR", "GBP"},
					"json":      predict.Nothing,
					"raw":       predict.Nothing,
					"transfers": predict.Nothing,
					"workers":   predict.Nothing,
					"v":         predict.Nothing,
				},
				Args: predict.Files("*.csv"),
			},
			"topic": {
				Flags: map[string]complete.Predictor{"raw": predict.Nothing},
				Args:  predict.Set(append(topics, "*")),
			},
			"help":     {Args: predict.Set(Names)},
			"flags":    {},
			"commands": {},
		},
	}
}
