package bps

import "StatMedan/internal/entity"

const (
	PortalTitle = "Portal Resmi BPS Kota Medan"
	PortalURL   = "https://medankota.bps.go.id/id"

	tableBaseURL = "https://medankota.bps.go.id/id/statistics-table/"
)

const (
	CategoryPopulation     = "Kependudukan"
	CategoryEconomy        = "Ekonomi"
	CategoryEducation      = "Pendidikan"
	CategoryHealth         = "Kesehatan"
	CategorySocial         = "Sosial"
	CategoryInfrastructure = "Infrastruktur"
	CategoryLabor          = "Ketenagakerjaan"
	CategoryAgriculture    = "Pertanian"
)

var staticDatasets = []entity.Dataset{
	{
		ID:          "penduduk-kecamatan",
		Title:       "Jumlah Penduduk Kota Medan Menurut Kecamatan",
		Description: "Jumlah penduduk per kecamatan di Kota Medan hasil proyeksi penduduk.",
		Category:    CategoryPopulation,
		URL:         tableBaseURL + "penduduk-menurut-kecamatan",
		Keywords:    []string{"penduduk", "populasi", "jumlah penduduk", "kecamatan", "jiwa"},
		Year:        2024,
	},
	{
		ID:          "laju-pertumbuhan-penduduk",
		Title:       "Laju Pertumbuhan Penduduk Kota Medan",
		Description: "Laju pertumbuhan penduduk per tahun menurut kecamatan.",
		Category:    CategoryPopulation,
		URL:         tableBaseURL + "laju-pertumbuhan-penduduk",
		Keywords:    []string{"pertumbuhan", "penduduk", "populasi", "laju"},
		Year:        2024,
	},
	{
		ID:          "kepadatan-penduduk",
		Title:       "Kepadatan Penduduk Kota Medan per Km²",
		Description: "Kepadatan penduduk per kilometer persegi menurut kecamatan.",
		Category:    CategoryPopulation,
		URL:         tableBaseURL + "kepadatan-penduduk",
		Keywords:    []string{"kepadatan", "penduduk", "luas wilayah"},
		Year:        2024,
	},
	{
		ID:          "rasio-jenis-kelamin",
		Title:       "Penduduk Menurut Jenis Kelamin dan Rasio Jenis Kelamin",
		Description: "Jumlah penduduk laki-laki dan perempuan serta rasio jenis kelamin.",
		Category:    CategoryPopulation,
		URL:         tableBaseURL + "rasio-jenis-kelamin",
		Keywords:    []string{"jenis kelamin", "laki-laki", "perempuan", "gender"},
		Year:        2024,
	},
	{
		ID:          "pdrb-lapangan-usaha",
		Title:       "PDRB Atas Dasar Harga Berlaku Menurut Lapangan Usaha",
		Description: "Produk Domestik Regional Bruto Kota Medan menurut lapangan usaha.",
		Category:    CategoryEconomy,
		URL:         tableBaseURL + "pdrb-lapangan-usaha",
		Keywords:    []string{"pdrb", "ekonomi", "produk domestik", "lapangan usaha"},
		Year:        2023,
	},
	{
		ID:          "pertumbuhan-ekonomi",
		Title:       "Laju Pertumbuhan Ekonomi Kota Medan",
		Description: "Laju pertumbuhan PDRB atas dasar harga konstan.",
		Category:    CategoryEconomy,
		URL:         tableBaseURL + "laju-pertumbuhan-ekonomi",
		Keywords:    []string{"pertumbuhan ekonomi", "ekonomi", "pdrb"},
		Year:        2023,
	},
	{
		ID:          "inflasi-bulanan",
		Title:       "Inflasi Bulanan Kota Medan",
		Description: "Inflasi bulanan, tahun kalender, dan tahun ke tahun Kota Medan.",
		Category:    CategoryEconomy,
		URL:         tableBaseURL + "inflasi-bulanan",
		Keywords:    []string{"inflasi", "harga", "ihk"},
		Year:        2024,
	},
	{
		ID:          "ihk-kelompok-pengeluaran",
		Title:       "Indeks Harga Konsumen Menurut Kelompok Pengeluaran",
		Description: "IHK Kota Medan menurut kelompok pengeluaran.",
		Category:    CategoryEconomy,
		URL:         tableBaseURL + "ihk-kelompok-pengeluaran",
		Keywords:    []string{"ihk", "indeks harga konsumen", "harga", "inflasi"},
		Year:        2024,
	},
	{
		ID:          "apk-apm",
		Title:       "Angka Partisipasi Kasar dan Angka Partisipasi Murni",
		Description: "APK dan APM menurut jenjang pendidikan di Kota Medan.",
		Category:    CategoryEducation,
		URL:         tableBaseURL + "apk-apm",
		Keywords:    []string{"pendidikan", "sekolah", "partisipasi", "apk", "apm"},
		Year:        2023,
	},
	{
		ID:          "jumlah-sekolah",
		Title:       "Jumlah Sekolah, Guru, dan Murid Menurut Jenjang Pendidikan",
		Description: "Banyaknya sekolah, guru, dan murid dari SD sampai SMA.",
		Category:    CategoryEducation,
		URL:         tableBaseURL + "jumlah-sekolah-guru-murid",
		Keywords:    []string{"sekolah", "guru", "murid", "siswa", "pendidikan"},
		Year:        2023,
	},
	{
		ID:          "fasilitas-kesehatan",
		Title:       "Jumlah Fasilitas Kesehatan Menurut Kecamatan",
		Description: "Rumah sakit, puskesmas, dan klinik menurut kecamatan.",
		Category:    CategoryHealth,
		URL:         tableBaseURL + "fasilitas-kesehatan",
		Keywords:    []string{"kesehatan", "rumah sakit", "puskesmas", "klinik"},
		Year:        2023,
	},
	{
		ID:          "tenaga-kesehatan",
		Title:       "Jumlah Tenaga Kesehatan Kota Medan",
		Description: "Dokter, perawat, dan bidan menurut kecamatan.",
		Category:    CategoryHealth,
		URL:         tableBaseURL + "tenaga-kesehatan",
		Keywords:    []string{"dokter", "perawat", "bidan", "kesehatan"},
		Year:        2023,
	},
	{
		ID:          "kemiskinan",
		Title:       "Jumlah dan Persentase Penduduk Miskin Kota Medan",
		Description: "Jumlah penduduk miskin, persentase, dan garis kemiskinan.",
		Category:    CategorySocial,
		URL:         tableBaseURL + "penduduk-miskin",
		Keywords:    []string{"kemiskinan", "miskin", "garis kemiskinan"},
		Year:        2024,
	},
	{
		ID:          "ipm",
		Title:       "Indeks Pembangunan Manusia Kota Medan",
		Description: "IPM beserta komponen umur harapan hidup, pendidikan, dan pengeluaran.",
		Category:    CategorySocial,
		URL:         tableBaseURL + "indeks-pembangunan-manusia",
		Keywords:    []string{"ipm", "pembangunan manusia", "harapan hidup"},
		Year:        2023,
	},
	{
		ID:          "panjang-jalan",
		Title:       "Panjang Jalan Menurut Kondisi Jalan",
		Description: "Panjang jalan kota menurut kondisi baik, sedang, dan rusak.",
		Category:    CategoryInfrastructure,
		URL:         tableBaseURL + "panjang-jalan",
		Keywords:    []string{"jalan", "infrastruktur", "transportasi"},
		Year:        2023,
	},
	{
		ID:          "pelanggan-air-listrik",
		Title:       "Jumlah Pelanggan Air Bersih dan Listrik",
		Description: "Pelanggan PDAM dan PLN menurut jenis pelanggan.",
		Category:    CategoryInfrastructure,
		URL:         tableBaseURL + "pelanggan-air-listrik",
		Keywords:    []string{"air bersih", "listrik", "pdam", "pln", "infrastruktur"},
		Year:        2023,
	},
	{
		ID:          "tpt",
		Title:       "Tingkat Pengangguran Terbuka Kota Medan",
		Description: "Tingkat pengangguran terbuka hasil Survei Angkatan Kerja Nasional.",
		Category:    CategoryLabor,
		URL:         tableBaseURL + "tingkat-pengangguran-terbuka",
		Keywords:    []string{"pengangguran", "tpt", "sakernas", "kerja"},
		Year:        2024,
	},
	{
		ID:          "angkatan-kerja",
		Title:       "Penduduk Usia Kerja Menurut Kegiatan Utama",
		Description: "Angkatan kerja, bekerja, dan pengangguran menurut jenis kelamin.",
		Category:    CategoryLabor,
		URL:         tableBaseURL + "penduduk-usia-kerja",
		Keywords:    []string{"angkatan kerja", "tenaga kerja", "bekerja", "kerja"},
		Year:        2024,
	},
	{
		ID:          "produksi-padi",
		Title:       "Luas Panen dan Produksi Padi Kota Medan",
		Description: "Luas panen, produktivitas, dan produksi padi menurut kecamatan.",
		Category:    CategoryAgriculture,
		URL:         tableBaseURL + "produksi-padi",
		Keywords:    []string{"padi", "panen", "pertanian", "beras"},
		Year:        2023,
	},
	{
		ID:          "perikanan",
		Title:       "Produksi Perikanan Tangkap dan Budidaya",
		Description: "Produksi ikan dari perikanan tangkap dan budidaya.",
		Category:    CategoryAgriculture,
		URL:         tableBaseURL + "produksi-perikanan",
		Keywords:    []string{"ikan", "perikanan", "nelayan"},
		Year:        2023,
	},
}

// trigger maps a phrase to the datasets it always surfaces.
type trigger struct {
	phrase     string
	datasetIDs []string
}

var staticTriggers = []trigger{
	{"penduduk miskin", []string{"kemiskinan"}},
	{"penduduk", []string{"penduduk-kecamatan", "laju-pertumbuhan-penduduk", "kepadatan-penduduk"}},
	{"populasi", []string{"penduduk-kecamatan", "laju-pertumbuhan-penduduk"}},
	{"kepadatan", []string{"kepadatan-penduduk"}},
	{"jenis kelamin", []string{"rasio-jenis-kelamin"}},
	{"pdrb", []string{"pdrb-lapangan-usaha", "pertumbuhan-ekonomi"}},
	{"ekonomi", []string{"pertumbuhan-ekonomi", "pdrb-lapangan-usaha"}},
	{"inflasi", []string{"inflasi-bulanan", "ihk-kelompok-pengeluaran"}},
	{"ihk", []string{"ihk-kelompok-pengeluaran"}},
	{"pendidikan", []string{"apk-apm", "jumlah-sekolah"}},
	{"sekolah", []string{"jumlah-sekolah"}},
	{"kesehatan", []string{"fasilitas-kesehatan", "tenaga-kesehatan"}},
	{"rumah sakit", []string{"fasilitas-kesehatan"}},
	{"miskin", []string{"kemiskinan"}},
	{"ipm", []string{"ipm"}},
	{"infrastruktur", []string{"panjang-jalan", "pelanggan-air-listrik"}},
	{"jalan", []string{"panjang-jalan"}},
	{"pengangguran", []string{"tpt"}},
	{"tenaga kerja", []string{"angkatan-kerja"}},
	{"padi", []string{"produksi-padi"}},
	{"pertanian", []string{"produksi-padi"}},
	{"perikanan", []string{"perikanan"}},
}

var staticSuggestions = []string{
	"Berapa jumlah penduduk Kota Medan?",
	"Tampilkan data inflasi bulanan Kota Medan",
	"Bagaimana pertumbuhan ekonomi Kota Medan?",
	"Data tingkat pengangguran terbuka",
	"Berapa persentase penduduk miskin di Medan?",
	"Data jumlah sekolah dan murid",
	"Jumlah fasilitas kesehatan per kecamatan",
	"Indeks Pembangunan Manusia Kota Medan",
	"Daftar kategori statistik",
}
