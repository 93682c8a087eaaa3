package telegram

const (
	internalErrMsg           string = "что-то пошло не так..."
	booksNotFound            string = "не удалось найти книг..."
	requestTooOld            string = "время обработки запроса истекло, введите новый:"
	startBookDownloading     string = "начинаем скачивать книгу..."
	bookHasNoDownload        string = "у этой книги нет свободной ссылки для скачивания (Google отдает файлы только для бесплатных книг)"
	linkEmailText            string = "Введите ваш send-to-kindle email address. Найти его можно в вашем аккаунте Amazon (content & devices -> preferences -> personal document settings -> Send-to-Kindle E-Mail Settings)"
	emailLinkedSuccessfully  string = "email успешно привязан"
	emailDeletedSuccessfully string = "email успешно удален"
	startSendingToKindle     string = "Начинаем отправку книги (процесс может занять до минуты для больших файлов)"
	emailNotLinked           string = "У вас нет привязанного email, вы можете установить email отправив команду /email боту"
	bookSendedToKindle       string = "Книга успешно отправлена на ваш kindle. Если kindle подключен к wifi - то через несколько минут книга должна отобразиться."
	favoriteAdded            string = "книга добавлена в избранное"
	favoriteDeleted          string = "книга удалена из избранного"
	favoritesEmpty           string = "в избранном пока пусто"
)
