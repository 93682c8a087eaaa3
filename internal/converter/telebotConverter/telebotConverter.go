package telebotConverter

import (
	"fmt"
	"strconv"
	"strings"

	"gbooks_tgbot/internal/model"
	"gbooks_tgbot/internal/model/tg/tgCallback"

	tele "gopkg.in/telebot.v4"
)

const maxDescriptionLen = 700

func EnteredTitleMenuResponse(title string) (text string, markup *tele.ReplyMarkup) {
	markup = &tele.ReplyMarkup{}
	text = fmt.Sprintf("Вы ввели название книги: %s", title)
	enterAuthorSurnameBtn := markup.Data("указать фамилию автора", tgCallback.EnterAuthorSurname)
	searchByBookTitleBtn := markup.Data("искать по названию книги", tgCallback.SearchByBookTitle)

	markup.Inline(
		markup.Row(enterAuthorSurnameBtn),
		markup.Row(searchByBookTitleBtn),
	)

	return text, markup
}

func EnterAuthorResponse() (text string) {
	return "введите фамилию автора (без имени)"
}

func BooksNotFound(title, author string) string {
	return fmt.Sprintf("не удалось найти книг по запросу: %s %s", title, author)
}

func BooksPage(booksPage model.BooksPage, booksPerPage int) (text string, markup *tele.ReplyMarkup) {
	markup = &tele.ReplyMarkup{}
	sb := strings.Builder{}

	sb.WriteString(fmt.Sprintf("Результаты поиска: %s %s\n\n", booksPage.Title, booksPage.Author))

	menuRows := make([]tele.Row, 0)

	for i, book := range booksPage.Books {
		if i%5 == 0 {
			menuRows = append(menuRows, make(tele.Row, 0, 5))
		}

		ordinal := (booksPage.Page * booksPerPage) + i + 1
		sb.WriteString(fmt.Sprintf("%d) %s%s%s\n\n", ordinal, book.Title, authorsSuffix(book.Authors), yearSuffix(book.Year)))
		btn := markup.Data(strconv.Itoa(ordinal), tgCallback.ToBookDetails+book.VolumeID)
		menuRows[len(menuRows)-1] = append(menuRows[len(menuRows)-1], btn)
	}

	paginationBtns := make([]tele.Btn, 0)
	if booksPage.Page > 0 {
		paginationBtns = append(paginationBtns, markup.Data("назад", tgCallback.ToBooksPage+strconv.Itoa(booksPage.Page-1)))
	}

	if booksPage.Page > 0 || booksPage.HasNextPage {
		paginationBtns = append(paginationBtns, markup.Data(fmt.Sprintf("стр %d", booksPage.Page+1), tgCallback.PageNumber))
	}

	if booksPage.HasNextPage {
		paginationBtns = append(paginationBtns, markup.Data("вперед", tgCallback.ToBooksPage+strconv.Itoa(booksPage.Page+1)))
	}

	menuRows = append(menuRows, markup.Row(paginationBtns...))

	markup.Inline(menuRows...)

	return sb.String(), markup
}

func BookDetails(volume model.Volume) (text string, markup *tele.ReplyMarkup) {
	markup = &tele.ReplyMarkup{}
	sb := strings.Builder{}

	sb.WriteString(volume.VolumeInfo.Title)
	if volume.VolumeInfo.Subtitle != "" {
		sb.WriteString(". " + volume.VolumeInfo.Subtitle)
	}
	sb.WriteString("\n\n")

	if len(volume.VolumeInfo.Authors) > 0 {
		sb.WriteString(strings.Join(volume.VolumeInfo.Authors, ", ") + "\n\n")
	}

	if volume.VolumeInfo.Publisher != "" || volume.VolumeInfo.PublishedDate != "" {
		sb.WriteString(strings.TrimSpace(volume.VolumeInfo.Publisher+" "+volume.VolumeInfo.PublishedYear()) + "\n\n")
	}

	if description := volume.VolumeInfo.Description; description != "" {
		if len([]rune(description)) > maxDescriptionLen {
			description = string([]rune(description)[:maxDescriptionLen]) + "..."
		}
		sb.WriteString(description + "\n\n")
	}

	menuRows := make([]tele.Row, 0)
	backBtn := markup.Data("назад", tgCallback.BackToBooksPage)
	menuRows = append(menuRows, markup.Row(backBtn))

	downloadRefs := volume.DownloadRefs()

	downloadRow := make(tele.Row, 0, len(downloadRefs))
	for _, format := range []string{"epub", "pdf"} {
		if _, ok := downloadRefs[format]; !ok {
			continue
		}

		btn := markup.Data(fmt.Sprintf("(%s)", format), tgCallback.DownloadBook+volume.ID+":"+format)
		downloadRow = append(downloadRow, btn)
	}
	if len(downloadRow) > 0 {
		menuRows = append(menuRows, downloadRow)
	}

	if _, ok := downloadRefs["epub"]; ok {
		btn := markup.Data("отправить на kindle", tgCallback.SendToKindle+volume.ID)
		menuRows = append(menuRows, markup.Row(btn))
	}

	favoriteBtn := markup.Data("в избранное", tgCallback.AddFavorite+volume.ID)
	menuRows = append(menuRows, markup.Row(favoriteBtn))

	if volume.VolumeInfo.PreviewLink != "" {
		previewBtn := markup.URL("превью в Google Books", volume.VolumeInfo.PreviewLink)
		menuRows = append(menuRows, markup.Row(previewBtn))
	}

	markup.Inline(menuRows...)

	return sb.String(), markup
}

func FavoritesPage(books []model.FavoriteBook) (text string, markup *tele.ReplyMarkup) {
	markup = &tele.ReplyMarkup{}
	sb := strings.Builder{}

	sb.WriteString("Избранные книги:\n\n")

	detailsRow := make(tele.Row, 0, len(books))
	deleteRow := make(tele.Row, 0, len(books))

	for i, book := range books {
		sb.WriteString(fmt.Sprintf("%d) %s", i+1, book.Title))
		if book.Authors != "" {
			sb.WriteString(" — " + book.Authors)
		}
		sb.WriteString("\n\n")

		detailsRow = append(detailsRow, markup.Data(strconv.Itoa(i+1), tgCallback.ToBookDetails+book.VolumeID))
		deleteRow = append(deleteRow, markup.Data(fmt.Sprintf("убрать %d", i+1), tgCallback.DeleteFavorite+book.VolumeID))
	}

	markup.Inline(detailsRow, deleteRow)

	return sb.String(), markup
}

func EmailNotLinkedMenu() (text string, markup *tele.ReplyMarkup) {
	markup = &tele.ReplyMarkup{}
	text = "У вас нет привязанного email"

	btn := markup.Data("привязать", tgCallback.LinkEmail)

	markup.Inline(markup.Row(btn))

	return text, markup
}

func EmailMenu(email string) (text string, markup *tele.ReplyMarkup) {
	markup = &tele.ReplyMarkup{}
	text = fmt.Sprintf("ваш email: %s", email)

	deleteBtn := markup.Data("удалить", tgCallback.DeleteEmail)
	changeBtn := markup.Data("изменить", tgCallback.LinkEmail)

	markup.Inline(
		markup.Row(deleteBtn),
		markup.Row(changeBtn),
	)

	return text, markup
}

func authorsSuffix(authors []string) string {
	if len(authors) == 0 {
		return ""
	}
	return " — " + strings.Join(authors, ", ")
}

func yearSuffix(year string) string {
	if year == "" {
		return ""
	}
	return fmt.Sprintf(" (%s)", year)
}
