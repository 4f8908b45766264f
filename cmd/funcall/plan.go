package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// Plan is a YAML-described sequence of calls into one library:
//
//	library: libm.so.6
//	convention: cdecl
//	calls:
//	  - symbol: cbrt
//	    args: ["f64:8"]
//	    ret: f64
type Plan struct {
	Library    string     `yaml:"library"`
	Convention string     `yaml:"convention"`
	Calls      []PlanCall `yaml:"calls"`
}

type PlanCall struct {
	Symbol string `yaml:"symbol"`
	// Convention overrides the plan-level default for this call.
	Convention string   `yaml:"convention"`
	Args       []string `yaml:"args"` // kind:value, as on the command line
	Ret        string   `yaml:"ret"`
}

func runPlan(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var plan Plan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return fmt.Errorf("parse plan: %w", err)
	}
	if plan.Library == "" {
		return fmt.Errorf("plan %s: missing library", path)
	}
	if plan.Convention == "" {
		plan.Convention = "cdecl"
	}

	for i, c := range plan.Calls {
		conv := c.Convention
		if conv == "" {
			conv = plan.Convention
		}
		out, err := invoke(plan.Library, c.Symbol, conv, c.Ret, c.Args)
		if err != nil {
			return fmt.Errorf("call %d (%s): %w", i, c.Symbol, err)
		}
		log.Debug("Call completed", "symbol", c.Symbol, "convention", conv)
		if out != "" {
			fmt.Println(out)
		}
	}
	return nil
}
