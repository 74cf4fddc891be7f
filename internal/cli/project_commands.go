package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"worklog/internal/services"
)

func (a *App) newProjectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}

	cmd.AddCommand(
		a.newProjectAddCommand(),
		a.newProjectListCommand(),
		a.newProjectUpdateCommand(),
		a.newProjectDeleteCommand(),
	)
	return cmd
}

func (a *App) newProjectAddCommand() *cobra.Command {
	var (
		client      string
		description string
		color       string
		rate        float64
		tags        []string
		parentID    string
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a new project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := services.NewProject{
				Name:        args[0],
				Client:      client,
				Description: description,
				Color:       color,
				Tags:        tags,
				ParentID:    parentID,
			}
			if cmd.Flags().Changed("rate") {
				input.HourlyRate = &rate
			}

			project, err := a.services.Projects.Create(input)
			if err != nil {
				return a.errors.Handle("create project", err)
			}
			fmt.Printf("Project created: %s (%s)\n", project.Name, project.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&client, "client", "c", "", "client name (required)")
	cmd.Flags().StringVarP(&description, "description", "d", "", "project description")
	cmd.Flags().StringVar(&color, "color", "#3B82F6", "display color tag")
	cmd.Flags().Float64Var(&rate, "rate", 0, "hourly rate")
	cmd.Flags().StringSliceVar(&tags, "tags", nil, "comma-separated tags")
	cmd.Flags().StringVar(&parentID, "parent", "", "parent project id (makes this a sub-project)")
	return cmd
}

func (a *App) newProjectListCommand() *cobra.Command {
	var includeArchived bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := a.services.Projects.List()
			if err != nil {
				return a.errors.Handle("list projects", err)
			}

			if len(projects) == 0 {
				fmt.Println("No projects yet")
				return nil
			}

			for _, p := range projects {
				if !p.IsActive && !includeArchived {
					continue
				}
				marker := ""
				if p.IsSubproject() {
					marker = "  └ "
				}
				rate := "-"
				if p.HourlyRate != nil {
					rate = fmt.Sprintf("%.2f/h", *p.HourlyRate)
				}
				fmt.Printf("%s%s  %s (%s)  rate: %s  tags: %s\n",
					marker, p.ID, p.Name, p.Client, rate, joinTags(p.Tags))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&includeArchived, "all", "a", false, "include archived projects")
	return cmd
}

func (a *App) newProjectUpdateCommand() *cobra.Command {
	var (
		name     string
		client   string
		rate     float64
		archived bool
	)

	cmd := &cobra.Command{
		Use:   "update <project-id>",
		Short: "Update a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			patch := services.ProjectPatch{}
			if cmd.Flags().Changed("name") {
				patch.Name = &name
			}
			if cmd.Flags().Changed("client") {
				patch.Client = &client
			}
			if cmd.Flags().Changed("rate") {
				patch.HourlyRate = &rate
			}
			if cmd.Flags().Changed("archived") {
				active := !archived
				patch.IsActive = &active
			}

			project, err := a.services.Projects.Update(args[0], patch)
			if err != nil {
				return a.errors.Handle("update project", err)
			}
			fmt.Printf("Project updated: %s\n", project.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new project name")
	cmd.Flags().StringVar(&client, "client", "", "new client name")
	cmd.Flags().Float64Var(&rate, "rate", 0, "new hourly rate")
	cmd.Flags().BoolVar(&archived, "archived", false, "archive or unarchive the project")
	return cmd
}

func (a *App) newProjectDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <project-id>",
		Short: "Delete a project",
		Long: `Delete a project. Historical time entries that reference it are kept;
they show up as belonging to an unknown project from then on.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.services.Projects.Delete(args[0]); err != nil {
				return a.errors.Handle("delete project", err)
			}
			fmt.Println("Project deleted")
			return nil
		},
	}
}
