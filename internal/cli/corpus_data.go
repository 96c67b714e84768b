package cli

import "language-sprint-service/internal/domain"

// defaultLanguages is the built-in corpus used when no database is
// configured; swap the loader for the Postgres-backed one in production.
func defaultLanguages() []domain.Language {
	return []domain.Language{
		{
			Code:              "es",
			Name:              "Spanish",
			AcceptableAnswers: []string{"spanish", "español", "spa", "es"},
			Difficulty:        domain.DifficultyEasy,
			Samples: []string{
				"El que mucho abarca, poco aprieta",
				"No hay mal que por bien no venga",
				"A caballo regalado no se le mira el diente",
				"Más vale tarde que nunca",
				"Hola, ¿cómo estás?",
			},
		},
		{
			Code:              "fr",
			Name:              "French",
			AcceptableAnswers: []string{"french", "français", "francais", "fra", "fr"},
			Difficulty:        domain.DifficultyEasy,
			Samples: []string{
				"Bonjour, comment allez-vous?",
				"C'est la vie",
				"Petit à petit, l'oiseau fait son nid",
				"L'argent ne fait pas le bonheur",
				"Qui vivra verra",
			},
		},
		{
			Code:              "de",
			Name:              "German",
			AcceptableAnswers: []string{"german", "deutsch", "deu", "de"},
			Difficulty:        domain.DifficultyEasy,
			Samples: []string{
				"Guten Tag, wie geht es Ihnen?",
				"Übung macht den Meister",
				"Aller Anfang ist schwer",
				"Morgenstund hat Gold im Mund",
				"Zeit ist Geld",
			},
		},
		{
			Code:              "ja",
			Name:              "Japanese",
			AcceptableAnswers: []string{"japanese", "日本語", "jpn", "ja"},
			Difficulty:        domain.DifficultyMedium,
			Samples: []string{
				"こんにちは、お元気ですか？",
				"七転び八起き",
				"花より団子",
				"猿も木から落ちる",
				"一期一会",
			},
		},
		{
			Code:              "zh",
			Name:              "Chinese",
			AcceptableAnswers: []string{"chinese", "mandarin", "中文", "zho", "zh"},
			Difficulty:        domain.DifficultyMedium,
			Samples: []string{
				"你好，你好吗？",
				"一分耕耘，一分收获",
				"熟能生巧",
				"时间就是金钱",
				"千里之行，始于足下",
			},
		},
		{
			Code:              "ko",
			Name:              "Korean",
			AcceptableAnswers: []string{"korean", "한국어", "kor", "ko"},
			Difficulty:        domain.DifficultyMedium,
			Samples: []string{
				"안녕하세요, 어떻게 지내세요?",
				"백지장도 맞들면 낫다",
				"티끌 모아 태산",
				"세 살 버릇 여든까지 간다",
				"시작이 반이다",
			},
		},
		{
			Code:              "ar",
			Name:              "Arabic",
			AcceptableAnswers: []string{"arabic", "العربية", "ara", "ar"},
			Difficulty:        domain.DifficultyHard,
			Samples: []string{
				"مرحبا، كيف حالك؟",
				"الصبر مفتاح الفرج",
				"العلم نور",
				"في التأني السلامة",
				"الصديق وقت الضيق",
			},
		},
		{
			Code:              "ru",
			Name:              "Russian",
			AcceptableAnswers: []string{"russian", "русский", "rus", "ru"},
			Difficulty:        domain.DifficultyMedium,
			Samples: []string{
				"Здравствуйте, как дела?",
				"Терпение и труд всё перетрут",
				"Повторение - мать учения",
				"Лучше поздно, чем никогда",
				"Век живи, век учись",
			},
		},
		{
			Code:              "pt",
			Name:              "Portuguese",
			AcceptableAnswers: []string{"portuguese", "português", "portugues", "por", "pt"},
			Difficulty:        domain.DifficultyEasy,
			Samples: []string{
				"Olá, como você está?",
				"Quem não arrisca, não petisca",
				"Devagar se vai ao longe",
				"Águas passadas não movem moinhos",
				"Deus ajuda quem cedo madruga",
			},
		},
		{
			Code:              "it",
			Name:              "Italian",
			AcceptableAnswers: []string{"italian", "italiano", "ita", "it"},
			Difficulty:        domain.DifficultyEasy,
			Samples: []string{
				"Ciao, come stai?",
				"Chi va piano, va sano e va lontano",
				"L'appetito vien mangiando",
				"Meglio tardi che mai",
				"Chi dorme non piglia pesci",
			},
		},
		{
			Code:              "hi",
			Name:              "Hindi",
			AcceptableAnswers: []string{"hindi", "हिन्दी", "hin", "hi"},
			Difficulty:        domain.DifficultyHard,
			Samples: []string{
				"नमस्ते, आप कैसे हैं?",
				"अभ्यास से सिद्धि होती है",
				"जैसी करनी वैसी भरनी",
				"बूँद बूँद से सागर भरता है",
				"समय सबसे कीमती है",
			},
		},
		{
			Code:              "nl",
			Name:              "Dutch",
			AcceptableAnswers: []string{"dutch", "nederlands", "nld", "nl"},
			Difficulty:        domain.DifficultyMedium,
			Samples: []string{
				"Hallo, hoe gaat het met je?",
				"Oefening baart kunst",
				"Beter laat dan nooit",
				"Alle begin is moeilijk",
				"Tijd is geld",
			},
		},
		{
			Code:              "sv",
			Name:              "Swedish",
			AcceptableAnswers: []string{"swedish", "svenska", "swe", "sv"},
			Difficulty:        domain.DifficultyMedium,
			Samples: []string{
				"Hej, hur mår du?",
				"Övning ger färdighet",
				"Bättre sent än aldrig",
				"Borta bra men hemma bäst",
				"Tid är pengar",
			},
		},
		{
			Code:              "pl",
			Name:              "Polish",
			AcceptableAnswers: []string{"polish", "polski", "pol", "pl"},
			Difficulty:        domain.DifficultyMedium,
			Samples: []string{
				"Cześć, jak się masz?",
				"Praktyka czyni mistrza",
				"Lepiej późno niż wcale",
				"Nie ma tego złego, co by na dobre nie wyszło",
				"Czas to pieniądz",
			},
		},
		{
			Code:              "tr",
			Name:              "Turkish",
			AcceptableAnswers: []string{"turkish", "türkçe", "turkce", "tur", "tr"},
			Difficulty:        domain.DifficultyMedium,
			Samples: []string{
				"Merhaba, nasılsın?",
				"Pratik mükemmel yapar",
				"Geç olsun güç olmasın",
				"Damlaya damlaya göl olur",
				"Zaman paradır",
			},
		},
		{
			Code:              "vi",
			Name:              "Vietnamese",
			AcceptableAnswers: []string{"vietnamese", "tiếng việt", "vie", "vi"},
			Difficulty:        domain.DifficultyHard,
			Samples: []string{
				"Xin chào, bạn khỏe không?",
				"Có công mài sắt có ngày nên kim",
				"Muộn còn hơn không",
				"Thời gian là vàng bạc",
				"Học thầy không tày học bạn",
			},
		},
		{
			Code:              "th",
			Name:              "Thai",
			AcceptableAnswers: []string{"thai", "ไทย", "tha", "th"},
			Difficulty:        domain.DifficultyHard,
			Samples: []string{
				"สวัสดี คุณสบายดีไหม?",
				"ฝึกหัดทำให้เก่ง",
				"สายดีกว่าไม่มา",
				"เวลาคือทอง",
				"น้ำหยดเป็นคลอง",
			},
		},
		{
			Code:              "el",
			Name:              "Greek",
			AcceptableAnswers: []string{"greek", "ελληνικά", "ell", "el"},
			Difficulty:        domain.DifficultyMedium,
			Samples: []string{
				"Γεια σου, πώς είσαι?",
				"Η πρακτική οδηγεί στην τελειότητα",
				"Καλύτερα αργά παρά ποτέ",
				"Ο χρόνος είναι χρήμα",
				"Η αρχή είναι το ήμισυ του παντός",
			},
		},
		{
			Code:              "he",
			Name:              "Hebrew",
			AcceptableAnswers: []string{"hebrew", "עברית", "heb", "he"},
			Difficulty:        domain.DifficultyHard,
			Samples: []string{
				"שלום, מה שלומך?",
				"תרגול עושה שלמות",
				"מוטב מאוחר מאשר אף פעם",
				"זמן הוא כסף",
				"התחלה טובה חצי הנחמה",
			},
		},
		{
			Code:              "sw",
			Name:              "Swahili",
			AcceptableAnswers: []string{"swahili", "kiswahili", "swa", "sw"},
			Difficulty:        domain.DifficultyHard,
			Samples: []string{
				"Habari, habari yako?",
				"Mazoezi hufanya ustadi",
				"Afadhali kuchelewa kuliko kutofika",
				"Maji yakimwagika hayazoleki",
				"Haba na haba hujaza kibaba",
			},
		},
		{
			Code:              "id",
			Name:              "Indonesian",
			AcceptableAnswers: []string{"indonesian", "bahasa indonesia", "ind", "id"},
			Difficulty:        domain.DifficultyMedium,
			Samples: []string{
				"Halo, apa kabar?",
				"Latihan membuat sempurna",
				"Lebih baik terlambat daripada tidak sama sekali",
				"Waktu adalah uang",
				"Air beriak tanda tak dalam",
			},
		},
		{
			Code:              "fi",
			Name:              "Finnish",
			AcceptableAnswers: []string{"finnish", "suomi", "fin", "fi"},
			Difficulty:        domain.DifficultyHard,
			Samples: []string{
				"Hei, mitä kuuluu?",
				"Harjoitus tekee mestarin",
				"Parempi myöhään kuin ei milloinkaan",
				"Aika on rahaa",
				"Ei mikään synny tyhjästä",
			},
		},
		{
			Code:              "cs",
			Name:              "Czech",
			AcceptableAnswers: []string{"czech", "čeština", "cestina", "ces", "cs"},
			Difficulty:        domain.DifficultyMedium,
			Samples: []string{
				"Ahoj, jak se máš?",
				"Cvičení dělá mistra",
				"Lepší pozdě než nikdy",
				"Čas jsou peníze",
				"Bez práce nejsou koláče",
			},
		},
		{
			Code:              "ro",
			Name:              "Romanian",
			AcceptableAnswers: []string{"romanian", "română", "romana", "ron", "ro"},
			Difficulty:        domain.DifficultyMedium,
			Samples: []string{
				"Bună, ce mai faci?",
				"Exercițiul duce la desăvârșire",
				"Mai bine mai târziu decât niciodată",
				"Timpul este bani",
				"Cine se scoală de dimineață, departe ajunge",
			},
		},
	}
}
