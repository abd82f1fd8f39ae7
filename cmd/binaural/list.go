package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-binaural/internal/data"
	"github.com/hazadus/go-binaural/internal/track"
	"github.com/hazadus/go-binaural/internal/utils"
)

// createListCommand создает команду list с привязкой к экземпляру приложения
func (app *Application) createListCommand() *cobra.Command {
	var category, search string
	var favorites bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List binaural beat tracks",
		Long:  `Display the track catalog, optionally filtered by category, favorites or a search query.`,
		Run: func(_ *cobra.Command, _ []string) {
			app.listTracks(category, favorites, search)
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "show only tracks of the category")
	cmd.Flags().BoolVarP(&favorites, "favorites", "f", false, "show only favorite tracks")
	cmd.Flags().StringVarP(&search, "search", "s", "", "search by name, frequency or description")

	return cmd
}

func (app *Application) listTracks(category string, favorites bool, search string) {
	manager := track.NewManager(app.State)

	var tracks []data.Track
	switch {
	case search != "":
		tracks = manager.Search(search)
	case favorites:
		tracks = manager.Favorites()
	case category != "":
		tracks = manager.ByCategory(data.Category(category))
	default:
		tracks = manager.ListTracks()
	}

	// Фильтры можно сочетать
	tracks = filterTracks(tracks, func(t data.Track) bool {
		if favorites && !t.IsFavorite {
			return false
		}
		if category != "" && !strings.EqualFold(string(t.Category), category) {
			return false
		}
		return true
	})

	if len(tracks) == 0 {
		fmt.Println("📚 Треков не найдено.")
		return
	}

	fmt.Printf("📚 Найдено треков: %d\n\n", len(tracks))

	// Выводим заголовок таблицы
	fmt.Printf("%-4s %-22s %-8s %-12s %-20s %s\n",
		"ID", "Название", "Частота", "Категория", "Подкатегория", "★")
	fmt.Println(strings.Repeat("-", 75))

	for _, t := range tracks {
		favorite := ""
		if t.IsFavorite {
			favorite = "★"
		}
		fmt.Printf("%-4s %-22s %-8s %-12s %-20s %s\n",
			utils.TruncateString(t.ID, 4),
			utils.TruncateString(t.Name, 22),
			t.Frequency,
			t.Category,
			utils.TruncateString(t.SubCategory, 20),
			favorite)
	}

	fmt.Println()
	fmt.Println("💡 Используйте 'binaural play [ID]' для запуска сессии")
}

func filterTracks(tracks []data.Track, keep func(data.Track) bool) []data.Track {
	var result []data.Track
	for _, t := range tracks {
		if keep(t) {
			result = append(result, t)
		}
	}
	return result
}
