package locale

// ruCatalog fills the shape original_source/src/mutator/locale/mod.rs
// expects of ru.rs (FIRST_NAMES_MALE/FEMALE, LAST_NAMES_MALE/FEMALE,
// PATRONYMICS_MALE/FEMALE); the upstream ru.rs source itself was not
// present in the retrieval pack, so these word lists are filled in
// fresh rather than copied.
var ruCatalog = Catalog{
	FirstNamesMale: []string{
		"Aleksandr", "Dmitriy", "Maksim", "Sergey", "Andrey", "Aleksey", "Artem",
		"Ilya", "Kirill", "Mikhail", "Nikita", "Matvey", "Roman", "Egor", "Arseniy",
		"Ivan", "Denis", "Evgeniy", "Pavel", "Vladimir", "Igor", "Stepan", "Gleb",
	},
	FirstNamesFemale: []string{
		"Anastasiya", "Mariya", "Anna", "Viktoriya", "Elizaveta", "Polina", "Sofiya",
		"Ekaterina", "Darya", "Yuliya", "Alina", "Kseniya", "Yelena", "Tatyana",
		"Olga", "Natalya", "Irina", "Marina", "Svetlana", "Oksana", "Valentina",
	},
	LastNamesMale: []string{
		"Ivanov", "Smirnov", "Kuznetsov", "Popov", "Vasilyev", "Petrov", "Sokolov",
		"Mikhaylov", "Novikov", "Fedorov", "Morozov", "Volkov", "Alekseev", "Lebedev",
		"Semenov", "Egorov", "Pavlov", "Kozlov", "Stepanov", "Nikolaev",
	},
	LastNamesFemale: []string{
		"Ivanova", "Smirnova", "Kuznetsova", "Popova", "Vasilyeva", "Petrova", "Sokolova",
		"Mikhaylova", "Novikova", "Fedorova", "Morozova", "Volkova", "Alekseeva", "Lebedeva",
		"Semenova", "Egorova", "Pavlova", "Kozlova", "Stepanova", "Nikolaeva",
	},
	Patronymics: []string{
		"Aleksandrovich", "Dmitrievich", "Sergeevich", "Andreevich", "Viktorovich",
		"Nikolaevich", "Ivanovich", "Petrovich", "Alekseevich", "Mikhaylovich",
		"Aleksandrovna", "Dmitrievna", "Sergeevna", "Andreevna", "Viktorovna",
		"Nikolaevna", "Ivanovna", "Petrovna", "Alekseevna", "Mikhaylovna",
	},
	EmailDomains: []string{
		"yandex.ru", "mail.ru", "rambler.ru", "gmail.com", "list.ru", "bk.ru",
	},
	StreetNames: []string{
		"Lenina", "Mira", "Sovetskaya", "Pobedy", "Gagarina", "Kirova", "Pushkina",
		"Centralnaya", "Molodezhnaya", "Shkolnaya", "Nabereznaya", "Zelenaya",
	},
	StreetSuffixes: []string{"ulitsa", "prospekt", "pereulok", "bulvar", "shosse"},
	Cities: []string{
		"Moskva", "Sankt-Peterburg", "Novosibirsk", "Yekaterinburg", "Kazan",
		"Nizhniy Novgorod", "Chelyabinsk", "Samara", "Omsk", "Rostov-na-Donu",
	},
	Regions: []string{
		"Moskovskaya oblast", "Leningradskaya oblast", "Sverdlovskaya oblast",
		"Novosibirskaya oblast", "Krasnodarskiy kray", "Tatarstan",
	},
	URISchemes: []string{"https"},
	URIDomains: []string{
		"primer.ru", "test.ru", "obrazets.ru", "demo.ru", "zapolnitel.ru",
	},
}
