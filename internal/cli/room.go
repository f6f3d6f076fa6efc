package cli

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"
)

func newRoomCmd() *cobra.Command {
	roomCmd := &cobra.Command{
		Use:   "room",
		Short: "Room operations",
	}

	roomCmd.AddCommand(newRoomCreateCmd())
	roomCmd.AddCommand(newRoomGetCmd())
	roomCmd.AddCommand(newRoomJoinCmd())
	roomCmd.AddCommand(newRoomStartCmd())
	roomCmd.AddCommand(newRoomCharacterCmd())

	return roomCmd
}

func newRoomCreateCmd() *cobra.Command {
	var adminPassword string
	var characters []string
	var playerCount int

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new room",
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]any{
				"adminPassword": adminPassword,
				"characters":    characters,
				"playerCount":   playerCount,
			}

			var result CreateResult
			if err := client.Post("/api/v1/rooms", body, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&adminPassword, "password", "", "Admin password (required)")
	cmd.Flags().StringSliceVar(&characters, "character", nil, "Character name, repeatable; duplicates add quota (required)")
	cmd.Flags().IntVar(&playerCount, "players", 0, "Player capacity (required)")
	_ = cmd.MarkFlagRequired("password")
	_ = cmd.MarkFlagRequired("character")
	_ = cmd.MarkFlagRequired("players")

	return cmd
}

func newRoomGetCmd() *cobra.Command {
	var adminPassword string

	cmd := &cobra.Command{
		Use:   "get <room-id>",
		Short: "Get the admin view of a room",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := fmt.Sprintf("/api/v1/rooms/%s?adminPassword=%s", args[0], url.QueryEscape(adminPassword))

			var result Room
			if err := client.Get(path, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&adminPassword, "password", "", "Admin password (required)")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newRoomJoinCmd() *cobra.Command {
	var playerName string

	cmd := &cobra.Command{
		Use:   "join <room-id>",
		Short: "Join a room as a player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]any{"playerName": playerName}

			var result JoinResult
			if err := client.Post(fmt.Sprintf("/api/v1/rooms/%s/join", args[0]), body, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&playerName, "name", "", "Player name (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newRoomStartCmd() *cobra.Command {
	var adminPassword string

	cmd := &cobra.Command{
		Use:   "start <room-id>",
		Short: "Start the room and assign characters",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := fmt.Sprintf("/api/v1/rooms/%s/start?adminPassword=%s", args[0], url.QueryEscape(adminPassword))

			var result Room
			if err := client.Post(path, nil, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&adminPassword, "password", "", "Admin password (required)")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newRoomCharacterCmd() *cobra.Command {
	var playerName string

	cmd := &cobra.Command{
		Use:   "character <room-id>",
		Short: "Look up a player's assigned character",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := fmt.Sprintf("/api/v1/rooms/%s/character?playerName=%s", args[0], url.QueryEscape(playerName))

			var result CharacterResult
			if err := client.Get(path, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&playerName, "name", "", "Player name (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}
