package morph

// genitiveTable — таблица именительный → родительный в нижнем регистре.
// Ключами служат и целые фразы (должности), и отдельные слова (имена,
// отчества, фамилии). Таблица пополняется по мере появления новых
// должностей и имён в реестре.
var genitiveTable = map[string]string{
	// должности
	"директор":                          "директора",
	"заместитель директора":             "заместителя директора",
	"исполняющий обязанности директора": "исполняющего обязанности директора",
	"заведующий":                        "заведующего",
	"заведующая":                        "заведующей",
	"начальник":                         "начальника",
	"руководитель":                      "руководителя",
	"заместитель":                       "заместителя",
	"исполняющий":                       "исполняющего",
	"исполняющая":                       "исполняющей",
	"обязанности":                       "обязанностей",
	"ректор":                            "ректора",
	"проректор":                         "проректора",
	"учитель":                           "учителя",
	"преподаватель":                     "преподавателя",
	"методист":                          "методиста",
	"специалист":                        "специалиста",
	"главный бухгалтер":                 "главного бухгалтера",
	"бухгалтер":                         "бухгалтера",

	// мужские имена
	"александр": "александра",
	"алексей":   "алексея",
	"андрей":    "андрея",
	"антон":     "антона",
	"борис":     "бориса",
	"вадим":     "вадима",
	"валерий":   "валерия",
	"василий":   "василия",
	"виктор":    "виктора",
	"виталий":   "виталия",
	"владимир":  "владимира",
	"вячеслав":  "вячеслава",
	"геннадий":  "геннадия",
	"георгий":   "георгия",
	"григорий":  "григория",
	"денис":     "дениса",
	"дмитрий":   "дмитрия",
	"евгений":   "евгения",
	"егор":      "егора",
	"иван":      "ивана",
	"игорь":     "игоря",
	"илья":      "ильи",
	"кирилл":    "кирилла",
	"константин": "константина",
	"леонид":    "леонида",
	"максим":    "максима",
	"михаил":    "михаила",
	"николай":   "николая",
	"олег":      "олега",
	"павел":     "павла",
	"пётр":      "петра",
	"петр":      "петра",
	"роман":     "романа",
	"сергей":    "сергея",
	"станислав": "станислава",
	"юрий":      "юрия",

	// женские имена
	"александра": "александры",
	"алла":       "аллы",
	"анастасия":  "анастасии",
	"анна":       "анны",
	"валентина":  "валентины",
	"вера":       "веры",
	"виктория":   "виктории",
	"галина":     "галины",
	"дарья":      "дарьи",
	"евгения":    "евгении",
	"екатерина":  "екатерины",
	"елена":      "елены",
	"ирина":      "ирины",
	"ксения":     "ксении",
	"лариса":     "ларисы",
	"любовь":     "любови",
	"людмила":    "людмилы",
	"марина":     "марины",
	"мария":      "марии",
	"надежда":    "надежды",
	"наталья":    "натальи",
	"нина":       "нины",
	"ольга":      "ольги",
	"светлана":   "светланы",
	"софия":      "софии",
	"софья":      "софьи",
	"татьяна":    "татьяны",
	"юлия":       "юлии",

	// мужские отчества
	"александрович": "александровича",
	"алексеевич":    "алексеевича",
	"анатольевич":   "анатольевича",
	"андреевич":     "андреевича",
	"борисович":     "борисовича",
	"валерьевич":    "валерьевича",
	"васильевич":    "васильевича",
	"викторович":    "викторовича",
	"владимирович":  "владимировича",
	"вячеславович":  "вячеславовича",
	"геннадьевич":   "геннадьевича",
	"дмитриевич":    "дмитриевича",
	"евгеньевич":    "евгеньевича",
	"иванович":      "ивановича",
	"игоревич":      "игоревича",
	"константинович": "константиновича",
	"леонидович":    "леонидовича",
	"михайлович":    "михайловича",
	"николаевич":    "николаевича",
	"олегович":      "олеговича",
	"павлович":      "павловича",
	"петрович":      "петровича",
	"сергеевич":     "сергеевича",
	"юрьевич":       "юрьевича",

	// женские отчества
	"александровна": "александровны",
	"алексеевна":    "алексеевны",
	"анатольевна":   "анатольевны",
	"андреевна":     "андреевны",
	"борисовна":     "борисовны",
	"валерьевна":    "валерьевны",
	"васильевна":    "васильевны",
	"викторовна":    "викторовны",
	"владимировна":  "владимировны",
	"геннадьевна":   "геннадьевны",
	"дмитриевна":    "дмитриевны",
	"евгеньевна":    "евгеньевны",
	"ивановна":      "ивановны",
	"игоревна":      "игоревны",
	"михайловна":    "михайловны",
	"николаевна":    "николаевны",
	"олеговна":      "олеговны",
	"павловна":      "павловны",
	"петровна":      "петровны",
	"сергеевна":     "сергеевны",
	"юрьевна":       "юрьевны",

	// фамилии, встречавшиеся в реестре
	"иванов":    "иванова",
	"иванова":   "ивановой",
	"петров":    "петрова",
	"петрова":   "петровой",
	"сидоров":   "сидорова",
	"сидорова":  "сидоровой",
	"кузнецов":  "кузнецова",
	"кузнецова": "кузнецовой",
	"смирнов":   "смирнова",
	"смирнова":  "смирновой",
	"соколова":  "соколовой",
	"попова":    "поповой",
	"васильева": "васильевой",
	"михайлова": "михайловой",
	"фёдорова":  "фёдоровой",
	"морозова":  "морозовой",
}
