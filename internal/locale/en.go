package locale

// enCatalog is grounded on original_source/src/mutator/locale/en.rs.
var enCatalog = Catalog{
	FirstNames: []string{
		"James", "Mary", "Robert", "Patricia", "John", "Jennifer", "Michael", "Linda",
		"David", "Elizabeth", "William", "Barbara", "Richard", "Susan", "Joseph", "Jessica",
		"Thomas", "Sarah", "Charles", "Karen", "Christopher", "Lisa", "Daniel", "Nancy",
		"Matthew", "Betty", "Anthony", "Margaret", "Mark", "Sandra", "Donald", "Ashley",
		"Steven", "Dorothy", "Paul", "Kimberly", "Andrew", "Emily", "Joshua", "Donna",
		"Kenneth", "Michelle", "Kevin", "Carol", "Brian", "Amanda", "George", "Melissa",
		"Timothy", "Deborah", "Ronald", "Stephanie", "Edward", "Rebecca", "Jason", "Sharon",
		"Jeffrey", "Laura", "Ryan", "Cynthia", "Jacob", "Kathleen", "Gary", "Amy",
		"Nicholas", "Angela", "Eric", "Shirley", "Jonathan", "Anna", "Stephen", "Brenda",
		"Larry", "Pamela", "Justin", "Emma", "Scott", "Nicole", "Brandon", "Helen",
		"Benjamin", "Samantha", "Samuel", "Katherine", "Raymond", "Christine", "Gregory", "Debra",
		"Frank", "Rachel", "Alexander", "Carolyn", "Patrick", "Janet", "Jack", "Catherine",
		"Dennis", "Maria", "Jerry", "Heather", "Tyler", "Diane", "Aaron", "Ruth",
		"Jose", "Julie", "Adam", "Olivia", "Nathan", "Joyce", "Henry", "Virginia",
		"Peter", "Victoria", "Zachary", "Kelly", "Douglas", "Lauren", "Harold", "Christina",
	},
	LastNames: []string{
		"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis",
		"Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez", "Wilson", "Anderson",
		"Thomas", "Taylor", "Moore", "Jackson", "Martin", "Lee", "Perez", "Thompson",
		"White", "Harris", "Sanchez", "Clark", "Ramirez", "Lewis", "Robinson", "Walker",
		"Young", "Allen", "King", "Wright", "Scott", "Torres", "Nguyen", "Hill",
		"Flores", "Green", "Adams", "Nelson", "Baker", "Hall", "Rivera", "Campbell",
		"Mitchell", "Carter", "Roberts", "Gomez", "Phillips", "Evans", "Turner", "Diaz",
		"Parker", "Cruz", "Edwards", "Collins", "Reyes", "Stewart", "Morris", "Morales",
		"Murphy", "Cook", "Rogers", "Gutierrez", "Ortiz", "Morgan", "Cooper", "Peterson",
		"Bailey", "Reed", "Kelly", "Howard", "Ramos", "Kim", "Cox", "Ward",
	},
	EmailDomains: []string{
		"gmail.com", "yahoo.com", "hotmail.com", "outlook.com", "mail.com",
		"protonmail.com", "icloud.com", "aol.com", "zoho.com", "yandex.com",
		"fastmail.com", "tutanota.com", "gmx.com", "inbox.com", "live.com",
	},
	StreetNames: []string{
		"Main", "Oak", "Pine", "Maple", "Cedar", "Elm", "Washington", "Lake",
		"Hill", "Walnut", "Spring", "North", "Park", "Church", "River", "South",
		"Bridge", "Highland", "Forest", "Sunset", "Madison", "Jefferson", "Lincoln",
		"Franklin", "Clinton", "Adams", "Monroe", "Jackson", "Harrison", "Taylor",
	},
	StreetSuffixes: []string{
		"Street", "Avenue", "Boulevard", "Drive", "Lane", "Road", "Way", "Place",
		"Court", "Circle", "Trail", "Parkway", "Commons", "Terrace", "Loop",
	},
	Cities: []string{
		"New York", "Los Angeles", "Chicago", "Houston", "Phoenix", "Philadelphia",
		"San Antonio", "San Diego", "Dallas", "San Jose", "Austin", "Jacksonville",
		"Fort Worth", "Columbus", "Indianapolis", "Charlotte", "San Francisco",
		"Seattle", "Denver", "Washington", "Nashville", "Oklahoma City", "El Paso",
		"Boston", "Portland", "Las Vegas", "Memphis", "Louisville", "Baltimore",
	},
	Regions: []string{
		"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "FL", "GA",
		"HI", "ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME", "MD",
		"MA", "MI", "MN", "MS", "MO", "MT", "NE", "NV", "NH", "NJ",
	},
	URISchemes: []string{"https"},
	URIDomains: []string{
		"example.com", "test.org", "sample.net", "demo.io", "fake.dev",
		"placeholder.com", "mock.org", "dummy.net", "faux.io", "pseudo.dev",
	},
}
