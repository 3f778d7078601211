package staff

// seedNextID is one past the highest ID in the seed fixture.
const seedNextID = 26

func seedRecords() []Record {
	return []Record{
		{ID: 1, FirstName: "Bradley", LastName: "Lawler", Role: "Professor", Phone: "(318) 744-0291", Email: "bradleyl@outlook.com", Faculty: "Science", Department: "Physics", Type: "Full time", DateAdded: "2024-03-01"},
		{ID: 2, FirstName: "Alex", LastName: "Ducksworth", Role: "Lecturer", Phone: "(818) 473-9359", Email: "alexd123@gmail.com", Faculty: "Engineering/Technology", Department: "Computer Engineering", Type: "Full time", DateAdded: "2024-03-10"},
		{ID: 3, FirstName: "James", LastName: "Hall", Role: "Dean", Phone: "(501) 338-2573", Email: "david23@gmail.com", Faculty: "Arts/Humanities", Department: "English Language", Type: "Full time", DateAdded: "2024-03-15"},
		{ID: 4, FirstName: "Stephanie", LastName: "Nicol", Role: "Deputy Vice Chancellor", Phone: "(602) 209-9604", Email: "k_patricia@gmail.com", Type: "Part time", DateAdded: "2024-03-18"},
		{ID: 5, FirstName: "Stephanie", LastName: "Sharkey", Role: "Registrar", Phone: "(323) 690-7279", Email: "paulas87@gmail.com", Type: "Full time", DateAdded: "2024-03-20"},
		{ID: 6, FirstName: "John", LastName: "Decker", Role: "President", Phone: "(207) 739-9240", Email: "hub33@outlook.com", Type: "Full time", DateAdded: "2024-03-20"},
		{ID: 7, FirstName: "Ricky", LastName: "Smith", Role: "Bursar", Phone: "(818) 313-7673", Email: "Daniel@aol.com", Type: "Full time", DateAdded: "2024-03-01"},
		{ID: 8, FirstName: "Daniel", LastName: "Hamilton", Role: "Head of Department", Phone: "(702) 813-8989", Email: "eddie.jake@gmail.com", Faculty: "Science", Department: "Computer Science", Type: "Part time", DateAdded: "2024-03-19"},
		{ID: 9, FirstName: "Paula", LastName: "Mora", Role: "Director of Studies", Phone: "(504) 696-9373", Email: "patriciad83@outlook.com", Type: "Full time", DateAdded: "2024-03-20"},
		{ID: 10, FirstName: "Judith", LastName: "Miller", Role: "Health Center Staff", Phone: "(707) 939-9707", Email: "j.miller@aol.com", Type: "Full time", DateAdded: "2024-03-22"},
		{ID: 11, FirstName: "Michael", LastName: "Johnson", Role: "Professor", Phone: "(415) 555-7890", Email: "mjohnson@university.edu", Faculty: "Science", Department: "Chemistry", Type: "Full time", DateAdded: "2024-02-15"},
		{ID: 12, FirstName: "Sarah", LastName: "Williams", Role: "Lecturer", Phone: "(212) 555-4321", Email: "swilliams@university.edu", Faculty: "Arts/Humanities", Department: "History", Type: "Part time", DateAdded: "2024-02-20"},
		{ID: 13, FirstName: "Robert", LastName: "Brown", Role: "Professor", Phone: "(312) 555-6789", Email: "rbrown@university.edu", Faculty: "Engineering/Technology", Department: "Electrical Engineering", Type: "Full time", DateAdded: "2024-01-10"},
		{ID: 14, FirstName: "Jennifer", LastName: "Davis", Role: "Head of Department", Phone: "(713) 555-9012", Email: "jdavis@university.edu", Faculty: "Business/Economics", Department: "Finance", Type: "Full time", DateAdded: "2024-01-15"},
		{ID: 15, FirstName: "David", LastName: "Wilson", Role: "Lecturer", Phone: "(305) 555-3456", Email: "dwilson@university.edu", Faculty: "Science", Department: "Biology", Type: "Part time", DateAdded: "2024-03-05"},
		{ID: 16, FirstName: "Lisa", LastName: "Anderson", Role: "Professor", Phone: "(404) 555-7890", Email: "landerson@university.edu", Faculty: "Medicine/Health", Department: "Nursing", Type: "Full time", DateAdded: "2024-02-28"},
		{ID: 17, FirstName: "Thomas", LastName: "Martinez", Role: "IT Staff", Phone: "(617) 555-2345", Email: "tmartinez@university.edu", Type: "Full time", DateAdded: "2024-01-20"},
		{ID: 18, FirstName: "Emily", LastName: "Thompson", Role: "Librarian", Phone: "(206) 555-6789", Email: "ethompson@university.edu", Type: "Full time", DateAdded: "2024-02-10"},
		{ID: 19, FirstName: "Christopher", LastName: "Garcia", Role: "Professor", Phone: "(619) 555-1234", Email: "cgarcia@university.edu", Faculty: "Law", Department: "Criminal Law", Type: "Full time", DateAdded: "2024-03-12"},
		{ID: 20, FirstName: "Amanda", LastName: "Rodriguez", Role: "Lecturer", Phone: "(214) 555-5678", Email: "arodriguez@university.edu", Faculty: "Education", Department: "Elementary Education", Type: "Part time", DateAdded: "2024-02-05"},
		{ID: 21, FirstName: "Kevin", LastName: "Lee", Role: "Professor", Phone: "(408) 555-9012", Email: "klee@university.edu", Faculty: "Engineering/Technology", Department: "Software Engineering", Type: "Full time", DateAdded: "2024-01-25"},
		{ID: 22, FirstName: "Michelle", LastName: "Clark", Role: "Counselor", Phone: "(303) 555-3456", Email: "mclark@university.edu", Type: "Full time", DateAdded: "2024-03-08"},
		{ID: 23, FirstName: "Brian", LastName: "Lewis", Role: "Professor", Phone: "(512) 555-7890", Email: "blewis@university.edu", Faculty: "Arts/Humanities", Department: "Philosophy", Type: "Full time", DateAdded: "2024-02-18"},
		{ID: 24, FirstName: "Jessica", LastName: "Walker", Role: "Administrative Staff", Phone: "(702) 555-2345", Email: "jwalker@university.edu", Type: "Part time", DateAdded: "2024-01-30"},
		{ID: 25, FirstName: "Matthew", LastName: "Hall", Role: "Professor", Phone: "(847) 555-6789", Email: "mhall@university.edu", Faculty: "Business/Economics", Department: "Marketing", Type: "Full time", DateAdded: "2024-03-15"},
	}
}
