package main

import (
	"github.com/bigbinarytech/institute/internal/pkg/helpers"
	"github.com/spf13/cobra"
)

var coursesCmd = &cobra.Command{
	Use:   "courses",
	Short: "Inspect the course catalog",
}

var courseSpecialization string

var coursesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every course, active or not",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		s, err := openSession(ctx)
		if err != nil {
			return err
		}
		defer s.Close()

		deps, err := s.dependencies()
		if err != nil {
			return err
		}
		courses, err := deps.CourseService.ListAll(ctx, courseSpecialization)
		if err != nil {
			return err
		}
		renderCourses(cmd.OutOrStdout(), courses)
		return nil
	},
}

var mediaCmd = &cobra.Command{
	Use:   "media",
	Short: "Inspect the media library",
}

var (
	mediaSection string
	mediaQuery   string
	mediaPage    int
)

var mediaListCmd = &cobra.Command{
	Use:   "list",
	Short: "List media assets",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		s, err := openSession(ctx)
		if err != nil {
			return err
		}
		defer s.Close()

		deps, err := s.dependencies()
		if err != nil {
			return err
		}
		result, err := deps.MediaService.Search(ctx, mediaSection, mediaQuery, mediaPage, helpers.MaxPageSize)
		if err != nil {
			return err
		}
		renderMedia(cmd.OutOrStdout(), result)
		return nil
	},
}

func init() {
	coursesListCmd.Flags().StringVarP(&courseSpecialization, "specialization", "s", "", "only courses of this specialization slug")
	coursesCmd.AddCommand(coursesListCmd)

	mediaListCmd.Flags().StringVar(&mediaSection, "section", "", "only assets of this section")
	mediaListCmd.Flags().StringVarP(&mediaQuery, "query", "q", "", "match key, name or description")
	mediaListCmd.Flags().IntVar(&mediaPage, "page", 1, "page number")
	mediaCmd.AddCommand(mediaListCmd)
}
