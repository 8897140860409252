package politburo

var firstNames = []string{
	"Aleksandr", "Anatoly", "Andrei", "Arkady", "Boris", "Dmitri",
	"Fyodor", "Georgy", "Grigory", "Igor", "Ivan", "Kirill", "Konstantin",
	"Lavrenty", "Leonid", "Maksim", "Mikhail", "Nikita", "Nikolai",
	"Oleg", "Pavel", "Pyotr", "Rodion", "Semyon", "Sergei", "Stepan",
	"Vadim", "Valentin", "Vasily", "Viktor", "Vladimir", "Vsevolod",
	"Yakov", "Yevgeny", "Yuri",
}

var patronymics = []string{
	"Aleksandrovich", "Andreyevich", "Borisovich", "Dmitrievich",
	"Fyodorovich", "Georgievich", "Grigorievich", "Igorevich",
	"Ivanovich", "Konstantinovich", "Leonidovich", "Mikhailovich",
	"Nikolaevich", "Olegovich", "Pavlovich", "Petrovich", "Sergeyevich",
	"Stepanovich", "Vasilievich", "Viktorovich", "Vladimirovich",
	"Yakovlevich", "Yurievich",
}

var surnames = []string{
	"Abramov", "Antonov", "Baranov", "Belov", "Bogdanov", "Chernov",
	"Fedorov", "Golubev", "Gorbunov", "Grishin", "Kazakov", "Klimov",
	"Kovalenko", "Kozlov", "Kuznetsov", "Lebedev", "Makarov", "Medvedev",
	"Mironov", "Morozov", "Nikitin", "Novikov", "Orlov", "Pavlov",
	"Petrov", "Polyakov", "Romanov", "Savin", "Semyonov", "Sidorov",
	"Smirnov", "Sokolov", "Solovyov", "Stepanov", "Tikhonov", "Titov",
	"Vinogradov", "Volkov", "Voronin", "Zaitsev", "Zhukov", "Zuev",
}
