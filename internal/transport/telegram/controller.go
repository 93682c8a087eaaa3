package telegram

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/mail"
	"strconv"
	"strings"
	"time"

	"gbooks_tgbot/config"
	"gbooks_tgbot/data/session"
	"gbooks_tgbot/internal/converter/telebotConverter"
	"gbooks_tgbot/internal/model"
	"gbooks_tgbot/internal/model/tg/tgCallback"
	"gbooks_tgbot/internal/service"
	"gbooks_tgbot/utils"

	tele "gopkg.in/telebot.v4"
)

type BookFinderService interface {
	GetBooksForPage(ctx context.Context, request model.BookSearchRequest) (booksPage model.BooksPage, err error)
	GetBookDetails(ctx context.Context, volumeID string) (volume model.Volume, err error)
	SetEmail(ctx context.Context, chatID int64, email string) error
	GetEmail(ctx context.Context, chatID int64) (string, error)
	DeleteEmail(ctx context.Context, chatID int64) error
	DownloadBook(ctx context.Context, volumeID string, format string) (fileBytes []byte, filename string, err error)
	SendBookToKindle(ctx context.Context, volumeID string, chatID int64) error
	UploadFileToCloud(ctx context.Context, reader io.Reader, filename string) (downloadLink string, err error)
	AddFavorite(ctx context.Context, chatID int64, volumeID string) error
	DeleteFavorite(ctx context.Context, chatID int64, volumeID string) error
	GetFavorites(ctx context.Context, chatID int64) ([]model.FavoriteBook, error)
}

type Session interface {
	GetSession(ctx context.Context, chatID int64) (model.Session, error)
	SetSession(ctx context.Context, chatID int64, session model.Session) error
	GetBookSearchRequest(ctx context.Context, chatID int64, msgID int) (request model.BookSearchRequest, err error)
	SetBookSearchRequest(ctx context.Context, chatID int64, msgID int, request model.BookSearchRequest) error
}

type Controller struct {
	cfg               *config.Config
	session           Session
	bookFinderService BookFinderService
}

func NewController(cfg *config.Config, bookFinderService BookFinderService, session Session) *Controller {
	return &Controller{
		cfg:               cfg,
		bookFinderService: bookFinderService,
		session:           session,
	}
}

func (ctrl *Controller) getSessionFromTeleCtxOrStorage(ctx context.Context, c tele.Context) (model.Session, error) {
	op := "Controller.getSessionFromTeleCtxOrStorage"
	chatSession, ok := c.Get("session").(model.Session)
	if ok {
		return chatSession, nil
	}

	rqID := utils.GetRequestIDFromCtx(ctx)
	chatSession, err := ctrl.session.GetSession(ctx, c.Chat().ID)
	if err != nil {
		if !errors.Is(err, session.ErrNotFound) {
			slog.Error("got error from session.GetSession", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		}
		return model.Session{}, err
	}
	return chatSession, nil
}

func (ctrl *Controller) sendAutoDeleteMsg(c tele.Context, text string) error {
	msg, err := c.Bot().Send(c.Chat(), text)
	if err != nil {
		return err
	}

	time.AfterFunc(5*time.Second, func() {
		c.Bot().Delete(msg)
	})
	return nil
}

func (ctrl *Controller) Start(c tele.Context) error {
	return c.Reply("Добро пожаловать! Я ищу книги в Google Books, просто введи название книги (фамилию автора можно будет указать позже).")
}

func (ctrl *Controller) Help(c tele.Context) error {
	return c.Reply("Чтобы найти книгу - просто введи ее название.\n\nДля бесплатных книг Google отдает прямые ссылки на файлы: такие книги можно скачать или отправить на свой kindle. Для отправки на kindle привяжи свой send-to-kindle email командой /email.\n\nКоманда /favorites покажет сохраненные книги.")
}

func (ctrl *Controller) ProcessEnteredTitle(c tele.Context) error {
	op := "Controller.ProcessEnteredTitle"
	ctx := utils.CreateCtxWithRqID(c)
	rqID := utils.GetRequestIDFromCtx(ctx)
	title := c.Message().Text

	chatSession := model.Session{BookTitle: title}
	err := ctrl.session.SetSession(ctx, c.Chat().ID, chatSession)
	if err != nil {
		slog.Error("got error from session.SetSession", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	return c.Send(telebotConverter.EnteredTitleMenuResponse(title))
}

func (ctrl *Controller) SearchByBookTitle(c tele.Context) error {
	op := "Controller.SearchByBookTitle"
	ctx := utils.CreateCtxWithRqID(c)
	rqID := utils.GetRequestIDFromCtx(ctx)

	chatSession, err := ctrl.getSessionFromTeleCtxOrStorage(ctx, c)
	if err != nil {
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	request := model.BookSearchRequest{
		Title:  chatSession.BookTitle,
		Author: "",
		Page:   0,
	}

	booksPage, err := ctrl.bookFinderService.GetBooksForPage(ctx, request)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			slog.Warn(
				"books not found",
				slog.String("rqID", rqID),
				slog.String("op", op),
				slog.String("title", chatSession.BookTitle),
				slog.String("author", chatSession.Author),
			)

			return c.Edit(telebotConverter.BooksNotFound(chatSession.BookTitle, chatSession.Author))
		}
		slog.Error("got error from bookFinderService.GetBooksForPage", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	go ctrl.session.SetBookSearchRequest(context.WithoutCancel(ctx), c.Chat().ID, c.Message().ID, request)

	return c.Edit(telebotConverter.BooksPage(booksPage, ctrl.cfg.BooksPerPage))
}

func (ctrl *Controller) InitEnterAuthorSurname(c tele.Context) error {
	op := "Controller.InitEnterAuthorSurname"
	ctx := utils.CreateCtxWithRqID(c)
	rqID := utils.GetRequestIDFromCtx(ctx)

	chatSession, err := ctrl.getSessionFromTeleCtxOrStorage(ctx, c)
	if err != nil {
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	chatSession.Action = model.ExpectingAuthor
	err = ctrl.session.SetSession(ctx, c.Chat().ID, chatSession)
	if err != nil {
		slog.Error("got error from session.SetSession", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	return c.Edit(telebotConverter.EnterAuthorResponse())
}

func (ctrl *Controller) ProcessEnterAuthorSurname(c tele.Context) error {
	op := "Controller.ProcessEnterAuthorSurname"
	ctx := utils.CreateCtxWithRqID(c)
	rqID := utils.GetRequestIDFromCtx(ctx)

	chatSession, err := ctrl.getSessionFromTeleCtxOrStorage(ctx, c)
	if err != nil {
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	chatSession.Author = c.Message().Text
	chatSession.Action = model.DefaultAction
	err = ctrl.session.SetSession(ctx, c.Chat().ID, chatSession)
	if err != nil {
		slog.Error("got error from session.SetSession", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	request := model.BookSearchRequest{
		Title:  chatSession.BookTitle,
		Author: chatSession.Author,
		Page:   0,
	}

	booksPage, err := ctrl.bookFinderService.GetBooksForPage(ctx, request)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			slog.Warn(
				"books not found",
				slog.String("rqID", rqID),
				slog.String("op", op),
				slog.String("title", chatSession.BookTitle),
				slog.String("author", chatSession.Author),
			)

			return c.Send(telebotConverter.BooksNotFound(chatSession.BookTitle, chatSession.Author))
		}
		slog.Error("got error from bookFinderService.GetBooksForPage", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return c.Send(internalErrMsg)
	}

	text, markup := telebotConverter.BooksPage(booksPage, ctrl.cfg.BooksPerPage)

	msg, err := c.Bot().Send(c.Recipient(), text, markup)
	if err == nil {
		go ctrl.session.SetBookSearchRequest(context.WithoutCancel(ctx), c.Chat().ID, msg.ID, request)
	}

	return err
}

func (ctrl *Controller) ProcessToBooksPage(c tele.Context) error {
	op := "Controller.ProcessToBooksPage"
	ctx := utils.CreateCtxWithRqID(c)
	rqID := utils.GetRequestIDFromCtx(ctx)

	pageStr := strings.TrimPrefix(c.Callback().Data, fmt.Sprintf("\f%s", tgCallback.ToBooksPage))
	page, err := strconv.Atoi(pageStr)
	if err != nil {
		slog.Error(
			"error while converting page from callback",
			slog.String("rqID", rqID),
			slog.String("op", op),
			slog.String("err", err.Error()),
			slog.String("pageStr", pageStr),
		)
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	request, err := ctrl.session.GetBookSearchRequest(ctx, c.Chat().ID, c.Message().ID)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return ctrl.sendAutoDeleteMsg(c, requestTooOld)
		}
		slog.Error("got error from session.GetBookSearchRequest", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	request.Page = page

	booksPage, err := ctrl.bookFinderService.GetBooksForPage(ctx, request)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			slog.Warn(
				"books not found",
				slog.String("rqID", rqID),
				slog.String("op", op),
				slog.String("title", request.Title),
				slog.String("author", request.Author),
			)
			return ctrl.sendAutoDeleteMsg(c, booksNotFound)
		}
		slog.Error("got error from bookFinderService.GetBooksForPage", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	go ctrl.session.SetBookSearchRequest(context.WithoutCancel(ctx), c.Chat().ID, c.Message().ID, request)

	return c.Edit(telebotConverter.BooksPage(booksPage, ctrl.cfg.BooksPerPage))
}

func (ctrl *Controller) ProcessToBookDetails(c tele.Context) error {
	op := "Controller.ProcessToBookDetails"
	ctx := utils.CreateCtxWithRqID(c)
	rqID := utils.GetRequestIDFromCtx(ctx)

	volumeID := strings.TrimPrefix(c.Callback().Data, fmt.Sprintf("\f%s", tgCallback.ToBookDetails))

	volume, err := ctrl.bookFinderService.GetBookDetails(ctx, volumeID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return ctrl.sendAutoDeleteMsg(c, booksNotFound)
		}
		slog.Error("got error from bookFinderService.GetBookDetails", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	return c.Edit(telebotConverter.BookDetails(volume))
}

func (ctrl *Controller) BackToBooksPage(c tele.Context) error {
	op := "Controller.BackToBooksPage"
	ctx := utils.CreateCtxWithRqID(c)
	rqID := utils.GetRequestIDFromCtx(ctx)

	request, err := ctrl.session.GetBookSearchRequest(ctx, c.Chat().ID, c.Message().ID)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return ctrl.sendAutoDeleteMsg(c, requestTooOld)
		}
		slog.Error("got error from session.GetBookSearchRequest", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	booksPage, err := ctrl.bookFinderService.GetBooksForPage(ctx, request)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return ctrl.sendAutoDeleteMsg(c, booksNotFound)
		}
		slog.Error("got error from bookFinderService.GetBooksForPage", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	return c.Edit(telebotConverter.BooksPage(booksPage, ctrl.cfg.BooksPerPage))
}

func (ctrl *Controller) DownloadBook(c tele.Context) error {
	op := "Controller.DownloadBook"
	ctx := utils.CreateCtxWithRqID(c)
	rqID := utils.GetRequestIDFromCtx(ctx)

	callbackData := strings.TrimPrefix(c.Callback().Data, fmt.Sprintf("\f%s", tgCallback.DownloadBook))

	// callback несет <volumeID>:<format>, формат не содержит двоеточий
	volumeID, format := callbackData, ""
	if idx := strings.LastIndex(callbackData, ":"); idx >= 0 {
		volumeID, format = callbackData[:idx], callbackData[idx+1:]
	}

	if err := ctrl.sendAutoDeleteMsg(c, startBookDownloading); err != nil {
		slog.Error("failed to send message", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
	}

	fileBytes, filename, err := ctrl.bookFinderService.DownloadBook(ctx, volumeID, format)
	if err != nil {
		if errors.Is(err, service.ErrNoDownload) {
			return ctrl.sendAutoDeleteMsg(c, bookHasNoDownload)
		}
		slog.Error("got error from bookFinderService.DownloadBook", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	downloadLink, err := ctrl.bookFinderService.UploadFileToCloud(ctx, bytes.NewReader(fileBytes), filename)
	if err != nil {
		slog.Error("got error from bookFinderService.UploadFileToCloud", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	return c.Send(fmt.Sprintf("ссылка для скачивания (действует ограниченное время):\n%s", downloadLink))
}

func (ctrl *Controller) SendBookToKindle(c tele.Context) error {
	op := "Controller.SendBookToKindle"
	ctx := utils.CreateCtxWithRqID(c)
	rqID := utils.GetRequestIDFromCtx(ctx)

	volumeID := strings.TrimPrefix(c.Callback().Data, fmt.Sprintf("\f%s", tgCallback.SendToKindle))

	if err := ctrl.sendAutoDeleteMsg(c, startSendingToKindle); err != nil {
		slog.Error("failed to send message", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
	}

	err := ctrl.bookFinderService.SendBookToKindle(ctx, volumeID, c.Chat().ID)
	if err != nil {
		if errors.Is(err, service.ErrEmailNotLinked) {
			return ctrl.sendAutoDeleteMsg(c, emailNotLinked)
		}
		if errors.Is(err, service.ErrNotFound) {
			return ctrl.sendAutoDeleteMsg(c, booksNotFound)
		}
		if errors.Is(err, service.ErrNoDownload) {
			return ctrl.sendAutoDeleteMsg(c, bookHasNoDownload)
		}
		slog.Error("got error from bookFinderService.SendBookToKindle", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	return c.Send(bookSendedToKindle)
}

func (ctrl *Controller) Email(c tele.Context) error {
	op := "Controller.Email"
	ctx := utils.CreateCtxWithRqID(c)
	rqID := utils.GetRequestIDFromCtx(ctx)

	email, err := ctrl.bookFinderService.GetEmail(ctx, c.Chat().ID)
	if err != nil {
		if errors.Is(err, service.ErrEmailNotLinked) {
			return c.Send(telebotConverter.EmailNotLinkedMenu())
		}
		slog.Error("got error from bookFinderService.GetEmail", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	return c.Send(telebotConverter.EmailMenu(email))
}

func (ctrl *Controller) InitLinkEmail(c tele.Context) error {
	op := "Controller.InitLinkEmail"
	ctx := utils.CreateCtxWithRqID(c)
	rqID := utils.GetRequestIDFromCtx(ctx)

	chatSession, err := ctrl.getSessionFromTeleCtxOrStorage(ctx, c)
	if err != nil && !errors.Is(err, session.ErrNotFound) {
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	chatSession.Action = model.ExpectingEmail
	err = ctrl.session.SetSession(ctx, c.Chat().ID, chatSession)
	if err != nil {
		slog.Error("got error from session.SetSession", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	return c.Send(linkEmailText)
}

func (ctrl *Controller) ProcessLinkEmail(c tele.Context) error {
	op := "Controller.ProcessLinkEmail"
	ctx := utils.CreateCtxWithRqID(c)
	rqID := utils.GetRequestIDFromCtx(ctx)

	email := strings.TrimSpace(c.Message().Text)
	if _, err := mail.ParseAddress(email); err != nil {
		return c.Send("это не похоже на email, попробуйте еще раз:")
	}

	err := ctrl.bookFinderService.SetEmail(ctx, c.Chat().ID, email)
	if err != nil {
		slog.Error("got error from bookFinderService.SetEmail", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	chatSession, err := ctrl.getSessionFromTeleCtxOrStorage(ctx, c)
	if err == nil {
		chatSession.Action = model.DefaultAction
		if err := ctrl.session.SetSession(ctx, c.Chat().ID, chatSession); err != nil {
			slog.Error("got error from session.SetSession", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		}
	}

	return c.Send(emailLinkedSuccessfully)
}

func (ctrl *Controller) DeleteEmail(c tele.Context) error {
	op := "Controller.DeleteEmail"
	ctx := utils.CreateCtxWithRqID(c)
	rqID := utils.GetRequestIDFromCtx(ctx)

	err := ctrl.bookFinderService.DeleteEmail(ctx, c.Chat().ID)
	if err != nil {
		slog.Error("got error from bookFinderService.DeleteEmail", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	return c.Send(emailDeletedSuccessfully)
}

func (ctrl *Controller) Favorites(c tele.Context) error {
	op := "Controller.Favorites"
	ctx := utils.CreateCtxWithRqID(c)
	rqID := utils.GetRequestIDFromCtx(ctx)

	books, err := ctrl.bookFinderService.GetFavorites(ctx, c.Chat().ID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.Send(favoritesEmpty)
		}
		slog.Error("got error from bookFinderService.GetFavorites", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	return c.Send(telebotConverter.FavoritesPage(books))
}

func (ctrl *Controller) AddFavorite(c tele.Context) error {
	op := "Controller.AddFavorite"
	ctx := utils.CreateCtxWithRqID(c)
	rqID := utils.GetRequestIDFromCtx(ctx)

	volumeID := strings.TrimPrefix(c.Callback().Data, fmt.Sprintf("\f%s", tgCallback.AddFavorite))

	err := ctrl.bookFinderService.AddFavorite(ctx, c.Chat().ID, volumeID)
	if err != nil {
		slog.Error("got error from bookFinderService.AddFavorite", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	return ctrl.sendAutoDeleteMsg(c, favoriteAdded)
}

func (ctrl *Controller) DeleteFavorite(c tele.Context) error {
	op := "Controller.DeleteFavorite"
	ctx := utils.CreateCtxWithRqID(c)
	rqID := utils.GetRequestIDFromCtx(ctx)

	volumeID := strings.TrimPrefix(c.Callback().Data, fmt.Sprintf("\f%s", tgCallback.DeleteFavorite))

	err := ctrl.bookFinderService.DeleteFavorite(ctx, c.Chat().ID, volumeID)
	if err != nil {
		slog.Error("got error from bookFinderService.DeleteFavorite", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	return ctrl.sendAutoDeleteMsg(c, favoriteDeleted)
}
