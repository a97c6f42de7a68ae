package main

import "github.com/spf13/cobra"

func runDBInit(cmd *cobra.Command, _ []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.Init(cmd.Context()); err != nil {
		return err
	}
	logger.Info("database initialized", "path", dbPath)

	return nil
}

func runDBDrop(cmd *cobra.Command, _ []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.Drop(cmd.Context()); err != nil {
		return err
	}
	logger.Info("database dropped", "path", dbPath)

	return nil
}

func runDBReset(cmd *cobra.Command, _ []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.Drop(cmd.Context()); err != nil {
		return err
	}
	if err := s.Init(cmd.Context()); err != nil {
		return err
	}
	logger.Info("database reset", "path", dbPath)

	return nil
}
