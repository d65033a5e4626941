package database

import "github.com/Anamitraroy22/school-management/models"

func ptr(s string) *string { return &s }

// seedSchools returns the sample rows inserted on first run. Contact
// numbers are stored digits-only, matching what the API persists.
func seedSchools() []models.School {
	rows := []models.School{
		{Name: "La Martiniere College", Address: "Hazratganj", City: "Lucknow", State: "Uttar Pradesh", Contact: "+91 91234 56789", Image: ptr("https://upload.wikimedia.org/wikipedia/commons/0/0a/La_Martiniere_College%2C_Lucknow.jpg"), EmailID: "info@lamartiniere.edu.in"},
		{Name: "Jagran Public School", Address: "Gomti Nagar", City: "Lucknow", State: "Uttar Pradesh", Contact: "+91 92345 67890", Image: ptr("https://www.uniformapp.in/images/school/jagran-public-school-lucknow-campus.jpg"), EmailID: "contact@jpslucknow.org"},
		{Name: "Seth Anandram Jaipuria", Address: "Gomti Nagar", City: "Lucknow", State: "Uttar Pradesh", Contact: "+91 93456 78901", Image: ptr("https://jaipuriaschoolgn.in/wp-content/uploads/2020/05/school.jpg"), EmailID: "info@jaipuriaschool.edu"},
		{Name: "Lucknow Public School", Address: "Vinay Khand, Gomti Nagar", City: "Lucknow", State: "Uttar Pradesh", Contact: "+91 94567 89012", Image: ptr("https://www.uniformapp.in/images/school/lucknow-public-school-campus.jpg"), EmailID: "admin@lpslucknow.org"},
		{Name: "Delhi Public School", Address: "Sector 30", City: "Noida", State: "Uttar Pradesh", Contact: "+91 95678 90123", Image: ptr("https://www.dpsnoida.co.in/images/school_building.jpg"), EmailID: "contact@dpsnoida.edu"},
		{Name: "The Doon School", Address: "Mall Road", City: "Dehradun", State: "Uttarakhand", Contact: "+91 96789 01234", Image: ptr("https://www.doonschool.com/wp-content/uploads/2018/12/DoonSchool-Campus.jpg"), EmailID: "info@doonschool.edu"},
		{Name: "Modern School", Address: "Barakhamba Road", City: "New Delhi", State: "Delhi", Contact: "+91 97890 12345", Image: ptr("https://modernschool.net/wp-content/uploads/2019/04/campus.jpg"), EmailID: "admissions@modernschool.edu"},
		{Name: "St. Xavier's Collegiate School", Address: "Park Street", City: "Kolkata", State: "West Bengal", Contact: "+91 98901 23456", Image: ptr("https://stxavierskolkata.org/assets/images/school-campus.jpg"), EmailID: "office@stxaviers.edu"},
		{Name: "Ryan International School", Address: "Kandivali East", City: "Mumbai", State: "Maharashtra", Contact: "+91 99012 34567", Image: ptr("https://ryaninternational.org/images/school-campus.jpg"), EmailID: "ryan@ris.edu"},
		{Name: "Bishop Cotton School", Address: "Mall Road", City: "Shimla", State: "Himachal Pradesh", Contact: "+91 90123 45678", Image: ptr("https://bishopcottonshimla.com/wp-content/uploads/2021/04/campus.jpg"), EmailID: "contact@bishopcotton.edu"},
	}
	for i := range rows {
		rows[i].Contact = models.DigitsOnly(rows[i].Contact)
	}
	return rows
}
