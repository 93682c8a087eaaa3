package googlebooks

const searchVolumesResponse = `{
  "kind": "books#volumes",
  "totalItems": 128,
  "items": [
    {
      "kind": "books#volume",
      "id": "zyTCAlFPjgYC",
      "etag": "f0zKg75Mx/I",
      "volumeInfo": {
        "title": "The Google Story",
        "authors": ["David A. Vise", "Mark Malseed"],
        "publisher": "Random House Digital, Inc.",
        "publishedDate": "2005-11-15",
        "description": "Here is the story behind one of the most remarkable Internet successes of our time.",
        "industryIdentifiers": [
          {"type": "ISBN_10", "identifier": "055380457X"},
          {"type": "ISBN_13", "identifier": "9780553804577"}
        ],
        "pageCount": 207,
        "printType": "BOOK",
        "categories": ["Browsers (Computer programs)"],
        "language": "en",
        "previewLink": "http://books.google.com/books?id=zyTCAlFPjgYC&printsec=frontcover"
      },
      "saleInfo": {
        "country": "US",
        "saleability": "FOR_SALE",
        "isEbook": true,
        "listPrice": {"amount": 11.99, "currencyCode": "USD"}
      },
      "accessInfo": {
        "country": "US",
        "viewability": "PARTIAL",
        "embeddable": true,
        "publicDomain": false,
        "epub": {"isAvailable": true, "acsTokenLink": "http://books.google.com/books/download/The_Google_Story-sample-epub.acsm"},
        "pdf": {"isAvailable": false}
      }
    },
    {
      "kind": "books#volume",
      "id": "yDtCuFHXbAYC",
      "etag": "8Z4QZEJMdCs",
      "volumeInfo": {
        "title": "Flatland",
        "subtitle": "A Romance of Many Dimensions",
        "authors": ["Edwin A. Abbott"],
        "publishedDate": "1884",
        "printType": "BOOK",
        "language": "en"
      },
      "saleInfo": {
        "country": "US",
        "saleability": "FREE",
        "isEbook": true
      },
      "accessInfo": {
        "country": "US",
        "viewability": "ALL_PAGES",
        "publicDomain": true,
        "epub": {"isAvailable": true, "downloadLink": "http://books.google.com/books/download/Flatland.epub?id=yDtCuFHXbAYC&output=epub"},
        "pdf": {"isAvailable": true, "downloadLink": "http://books.google.com/books/download/Flatland.pdf?id=yDtCuFHXbAYC&output=pdf"}
      }
    }
  ]
}`

const volumeResponse = `{
  "kind": "books#volume",
  "id": "zyTCAlFPjgYC",
  "etag": "f0zKg75Mx/I",
  "volumeInfo": {
    "title": "The Google Story",
    "authors": ["David A. Vise", "Mark Malseed"],
    "publisher": "Random House Digital, Inc.",
    "publishedDate": "2005-11-15",
    "description": "Here is the story behind one of the most remarkable Internet successes of our time.",
    "industryIdentifiers": [
      {"type": "ISBN_10", "identifier": "055380457X"},
      {"type": "ISBN_13", "identifier": "9780553804577"}
    ],
    "pageCount": 207,
    "printType": "BOOK",
    "language": "en",
    "previewLink": "http://books.google.com/books?id=zyTCAlFPjgYC&printsec=frontcover",
    "imageLinks": {
      "thumbnail": "http://books.google.com/books/content?id=zyTCAlFPjgYC&printsec=frontcover&img=1&zoom=1"
    }
  },
  "saleInfo": {
    "country": "US",
    "saleability": "FOR_SALE",
    "isEbook": true,
    "listPrice": {"amount": 11.99, "currencyCode": "USD"},
    "retailPrice": {"amount": 11.99, "currencyCode": "USD"}
  },
  "accessInfo": {
    "country": "US",
    "viewability": "PARTIAL",
    "embeddable": true,
    "publicDomain": false,
    "epub": {"isAvailable": true, "acsTokenLink": "http://books.google.com/books/download/The_Google_Story-sample-epub.acsm"},
    "pdf": {"isAvailable": false},
    "accessViewStatus": "SAMPLE"
  }
}`

const wrongKindResponse = `{
  "kind": "books#bookshelf",
  "id": "zyTCAlFPjgYC"
}`

const apiErrorResponse = `{
  "error": {
    "code": 500,
    "message": "Backend Error",
    "errors": [
      {"message": "Backend Error", "domain": "global", "reason": "backendError"}
    ]
  }
}`
