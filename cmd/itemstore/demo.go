package main

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gostonefire/itemstore"
	"github.com/gostonefire/itemstore/provider"
)

type demoParams struct {
	items int
	seed  int64
}

func newDemoCmd() *cobra.Command {
	var params demoParams
	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Fill a store with random items from the data provider and walk it",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd, params)
		},
	}
	demoCmd.Flags().IntVarP(&params.items, "items", "n", 10, "number of distinct items to store")
	demoCmd.Flags().Int64Var(&params.seed, "seed", 0, "provider seed, 0 seeds from the wall clock")
	return demoCmd
}

func runDemo(cmd *cobra.Command, params demoParams) error {
	dp := provider.NewDataProvider(params.seed)
	store := itemstore.New()

	// The provider may serve the same item more than once, duplicates are skipped
	attempts := 0
	for store.Count() < params.items {
		attempts++
		if attempts > params.items*100 {
			return fmt.Errorf("provider could not serve %d distinct items", params.items)
		}

		item, err := dp.Fetch("")
		if err != nil {
			return fmt.Errorf("fetching item from provider: %w", err)
		}

		if err = store.Insert(item); err != nil {
			if errors.Is(err, itemstore.DuplicateIdentifier{}) {
				logrus.WithField("id", item.ID).Debug("duplicate item skipped")
				continue
			}
			return fmt.Errorf("inserting %q: %w", item.ID, err)
		}
		logrus.WithFields(logrus.Fields{"id": item.ID, "code": item.Code}).Debug("item stored")
	}

	stat := store.Stat(true)
	logrus.WithFields(logrus.Fields{
		"items":   stat.Items,
		"buckets": len(stat.ChainDistribution),
	}).Info("store filled")

	// Round-trip the first enumerated item through find and remove
	first, err := store.Items().Next()
	if err != nil {
		return fmt.Errorf("enumerating store: %w", err)
	}
	probe := first.ID

	if _, err = store.Find(probe); err != nil {
		return fmt.Errorf("finding %q: %w", probe, err)
	}
	if err = store.Remove(probe); err != nil {
		return fmt.Errorf("removing %q: %w", probe, err)
	}
	if _, err = store.Find(probe); !errors.Is(err, itemstore.NotFound{}) {
		return fmt.Errorf("item %q still present after removal", probe)
	}
	logrus.WithField("id", probe).Info("find and remove round-trip verified")

	cmd.Printf("%d items stored:\n%s", store.Count(), store)
	return nil
}
