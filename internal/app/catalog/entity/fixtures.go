package entity

import "time"

// FixtureDevices возвращает стартовый набор устройств каталога.
// Используется для наполнения пустого хранилища при первом запуске.
// Каждый вызов возвращает свежий срез, чтобы вызывающая сторона
// могла свободно мутировать результат.
func FixtureDevices() []Device {
	return []Device{
		{
			ID:          "1",
			Name:        "iPhone 15 Pro",
			Brand:       "Apple",
			Category:    CategorySmartphone,
			Price:       15000000,
			Image:       "/images/iphone-15-pro.jpg",
			ReleaseDate: "2023-09-22",
			Rating:      4.8,
			Description: "El iPhone 15 Pro redefine la innovación con el chip A17 Pro, cámara avanzada de 48MP y diseño en titanio premium.",
			Review:      "Un smartphone excepcional que combina rendimiento de clase mundial con un diseño elegante. La cámara es impresionante para fotografía profesional y el chip A17 Pro ofrece un rendimiento sin igual.",
			Specs: DeviceSpecs{
				Processor:       "A17 Pro Bionic",
				RAM:             "8GB",
				Storage:         "128GB / 256GB / 512GB / 1TB",
				OperatingSystem: "iOS 17",
				Smartphone: &SmartphoneSpecs{
					ScreenSize: "6.1 pulgadas",
					Camera:     "48MP + 12MP + 12MP",
					Battery:    "3274 mAh",
				},
			},
		},
		{
			ID:          "2",
			Name:        "Samsung Galaxy S24 Ultra",
			Brand:       "Samsung",
			Category:    CategorySmartphone,
			Price:       1199,
			Image:       "/images/galaxy-s24-ultra.jpg",
			ReleaseDate: "2024-01-24",
			Rating:      4.7,
			Description: "El Galaxy S24 Ultra lleva la fotografía móvil al siguiente nivel con IA integrada y S Pen incorporado.",
			Review:      "Samsung ha creado un verdadero flagship con el S24 Ultra. La pantalla es absolutamente brillante, el S Pen es útil para productividad, y las capacidades de IA son impresionantes.",
			Specs: DeviceSpecs{
				Processor:       "Snapdragon 8 Gen 3",
				RAM:             "12GB",
				Storage:         "256GB / 512GB / 1TB",
				OperatingSystem: "Android 14",
				Smartphone: &SmartphoneSpecs{
					ScreenSize: "6.8 pulgadas",
					Camera:     "200MP + 50MP + 12MP + 10MP",
					Battery:    "5000 mAh",
				},
			},
		},
		{
			ID:          "3",
			Name:        "Google Pixel 8 Pro",
			Brand:       "Google",
			Category:    CategorySmartphone,
			Price:       899,
			Image:       "/images/pixel-8-pro.jpg",
			ReleaseDate: "2023-10-12",
			Rating:      4.6,
			Description: "El Pixel 8 Pro ofrece la mejor experiencia Android con fotografía computacional avanzada y actualizaciones garantizadas.",
			Review:      "Google demuestra su dominio en software con el Pixel 8 Pro. La fotografía computacional es simplemente la mejor del mercado, y Android puro es una delicia de usar.",
			Specs: DeviceSpecs{
				Processor:       "Google Tensor G3",
				RAM:             "12GB",
				Storage:         "128GB / 256GB / 512GB",
				OperatingSystem: "Android 14",
				Smartphone: &SmartphoneSpecs{
					ScreenSize: "6.7 pulgadas",
					Camera:     "50MP + 48MP + 48MP",
					Battery:    "5050 mAh",
				},
			},
		},
		{
			ID:          "4",
			Name:        "MacBook Pro 16\" M3",
			Brand:       "Apple",
			Category:    CategoryLaptop,
			Price:       2499,
			Image:       "/images/macbook-pro-16-m3.jpg",
			ReleaseDate: "2023-10-30",
			Rating:      4.9,
			Description: "El MacBook Pro de 16 pulgadas con chip M3 ofrece rendimiento profesional excepcional para creativos y desarrolladores.",
			Review:      "Apple ha alcanzado la perfección con este MacBook Pro. El chip M3 es increíblemente potente, la pantalla Liquid Retina XDR es espectacular, y la duración de la batería es excepcional.",
			Specs: DeviceSpecs{
				Processor:       "Apple M3 Pro / M3 Max",
				RAM:             "18GB / 36GB",
				Storage:         "512GB / 1TB / 2TB / 4TB / 8TB SSD",
				OperatingSystem: "macOS Sonoma",
				Laptop: &LaptopSpecs{
					Graphics:    "M3 Pro / M3 Max GPU",
					Ports:       []string{"3x Thunderbolt 4", "HDMI", "SDXC", "MagSafe 3"},
					Weight:      "2.16 kg",
					DisplayType: "16.2\" Liquid Retina XDR",
				},
			},
		},
		{
			ID:          "5",
			Name:        "Dell XPS 13 Plus",
			Brand:       "Dell",
			Category:    CategoryLaptop,
			Price:       1299,
			Image:       "/images/dell-xps-13-plus.jpg",
			ReleaseDate: "2023-08-15",
			Rating:      4.5,
			Description: "El Dell XPS 13 Plus redefinió el diseño ultrabook con un teclado edge-to-edge y pantalla InfinityEdge.",
			Review:      "Dell ha creado un ultrabook verdaderamente innovador. El diseño es minimalista y moderno, el rendimiento es sólido para trabajo diario, aunque la duración de batería podría ser mejor.",
			Specs: DeviceSpecs{
				Processor:       "Intel Core i7-1360P",
				RAM:             "16GB / 32GB LPDDR5",
				Storage:         "512GB / 1TB / 2TB SSD",
				OperatingSystem: "Windows 11",
				Laptop: &LaptopSpecs{
					Graphics:    "Intel Iris Xe",
					Ports:       []string{"2x Thunderbolt 4"},
					Weight:      "1.26 kg",
					DisplayType: "13.4\" InfinityEdge",
				},
			},
		},
		{
			ID:          "6",
			Name:        "HP Spectre x360 14",
			Brand:       "HP",
			Category:    CategoryLaptop,
			Price:       1199,
			Image:       "/images/hp-spectre-x360-14.jpg",
			ReleaseDate: "2023-09-01",
			Rating:      4.4,
			Description: "El HP Spectre x360 combina elegancia premium con versatilidad 2-en-1 para profesionales creativos.",
			Review:      "Un convertible elegante y versátil. La bisagra funciona perfectamente, la pantalla táctil es responsiva, y el diseño premium justifica el precio. Ideal para presentaciones y trabajo creativo.",
			Specs: DeviceSpecs{
				Processor:       "Intel Core i7-1355U",
				RAM:             "16GB LPDDR4x",
				Storage:         "512GB / 1TB SSD",
				OperatingSystem: "Windows 11",
				Laptop: &LaptopSpecs{
					Graphics:    "Intel Iris Xe",
					Ports:       []string{"2x Thunderbolt 4", "1x USB-A", "MicroSD"},
					Weight:      "1.39 kg",
					DisplayType: "13.5\" OLED Táctil",
				},
			},
		},
		{
			ID:          "7",
			Name:        "OnePlus 12",
			Brand:       "OnePlus",
			Category:    CategorySmartphone,
			Price:       799,
			Image:       "/images/oneplus-12.jpg",
			ReleaseDate: "2024-01-23",
			Rating:      4.5,
			Description: "El OnePlus 12 ofrece velocidad flagship con carga ultrarrápida y cámaras mejoradas por Hasselblad.",
			Review:      "OnePlus vuelve a sus raíces con el 12. La carga rápida de 100W es impresionante, el rendimiento es fluido, y las cámaras han mejorado significativamente con la colaboración de Hasselblad.",
			Specs: DeviceSpecs{
				Processor:       "Snapdragon 8 Gen 3",
				RAM:             "12GB / 16GB",
				Storage:         "256GB / 512GB",
				OperatingSystem: "OxygenOS 14 (Android 14)",
				Smartphone: &SmartphoneSpecs{
					ScreenSize: "6.82 pulgadas",
					Camera:     "50MP + 64MP + 48MP",
					Battery:    "5400 mAh",
				},
			},
		},
		{
			ID:          "8",
			Name:        "Lenovo ThinkPad X1 Carbon Gen 11",
			Brand:       "Lenovo",
			Category:    CategoryLaptop,
			Price:       1599,
			Image:       "/images/thinkpad-x1-carbon-gen11.jpg",
			ReleaseDate: "2023-07-20",
			Rating:      4.6,
			Description: "El ThinkPad X1 Carbon Gen 11 mantiene la legendaria durabilidad ThinkPad con procesadores Intel de 13ª generación.",
			Review:      "La serie ThinkPad sigue siendo el estándar de oro para laptops empresariales. El teclado es excepcional, la construcción es sólida como una roca, y el rendimiento es confiable para trabajo intensivo.",
			Specs: DeviceSpecs{
				Processor:       "Intel Core i7-1355U",
				RAM:             "16GB / 32GB LPDDR5",
				Storage:         "512GB / 1TB / 2TB SSD",
				OperatingSystem: "Windows 11 Pro",
				Laptop: &LaptopSpecs{
					Graphics:    "Intel Iris Xe",
					Ports:       []string{"2x Thunderbolt 4", "2x USB-A", "HDMI"},
					Weight:      "1.12 kg",
					DisplayType: "14\" IPS Anti-Glare",
				},
			},
		},
	}
}

// FixtureComments возвращает стартовый набор комментариев.
// Идентификаторы c1-c17 ссылаются на устройства 1-8 из FixtureDevices.
func FixtureComments() []Comment {
	return []Comment{
		{
			ID:        "c1",
			DeviceID:  "1",
			UserName:  "Ana García",
			UserEmail: "ana.garcia@email.com",
			Content:   "Increíble dispositivo. La cámara es excepcional y el rendimiento es fluido. Vale cada peso.",
			Rating:    5,
			CreatedAt: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			ID:        "c2",
			DeviceID:  "1",
			UserName:  "Carlos Rodríguez",
			UserEmail: "carlos.rodriguez@email.com",
			Content:   "Muy buen teléfono, aunque el precio es alto. La duración de la batería podría ser mejor.",
			Rating:    4,
			CreatedAt: time.Date(2024, 1, 10, 14, 22, 0, 0, time.UTC),
		},
		{
			ID:        "c3",
			DeviceID:  "2",
			UserName:  "María López",
			UserEmail: "maria.lopez@email.com",
			Content:   "El S Pen es una maravilla para tomar notas. La pantalla es simplemente espectacular.",
			Rating:    5,
			CreatedAt: time.Date(2024, 2, 1, 9, 15, 0, 0, time.UTC),
		},
		{
			ID:        "c4",
			DeviceID:  "2",
			UserName:  "Diego Fernández",
			UserEmail: "diego.fernandez@email.com",
			Content:   "Excelente para fotografía profesional. Las funciones de IA son muy útiles.",
			Rating:    5,
			CreatedAt: time.Date(2024, 1, 28, 16, 45, 0, 0, time.UTC),
		},
		{
			ID:        "c5",
			DeviceID:  "3",
			UserName:  "Laura Martínez",
			UserEmail: "laura.martinez@email.com",
			Content:   "La mejor cámara que he probado. Android puro es una experiencia deliciosa.",
			Rating:    5,
			CreatedAt: time.Date(2024, 1, 20, 11, 30, 0, 0, time.UTC),
		},
		{
			ID:        "c6",
			DeviceID:  "3",
			UserName:  "Roberto Silva",
			UserEmail: "roberto.silva@email.com",
			Content:   "Buen teléfono, pero esperaba más duración de batería para el precio.",
			Rating:    4,
			CreatedAt: time.Date(2024, 1, 18, 13, 20, 0, 0, time.UTC),
		},
		{
			ID:        "c7",
			DeviceID:  "4",
			UserName:  "Sofía Herrera",
			UserEmail: "sofia.herrera@email.com",
			Content:   "Perfecto para edición de video. El chip M3 es una bestia. La pantalla es increíble.",
			Rating:    5,
			CreatedAt: time.Date(2024, 1, 25, 8, 45, 0, 0, time.UTC),
		},
		{
			ID:        "c8",
			DeviceID:  "4",
			UserName:  "Andrés Morales",
			UserEmail: "andres.morales@email.com",
			Content:   "Caro pero vale la pena para trabajo profesional. La duración de batería es impresionante.",
			Rating:    5,
			CreatedAt: time.Date(2024, 1, 22, 15, 10, 0, 0, time.UTC),
		},
		{
			ID:        "c9",
			DeviceID:  "4",
			UserName:  "Valentina Torres",
			UserEmail: "valentina.torres@email.com",
			Content:   "Como desarrolladora, este MacBook es todo lo que necesito. Compilaciones súper rápidas.",
			Rating:    5,
			CreatedAt: time.Date(2024, 1, 20, 12, 30, 0, 0, time.UTC),
		},
		{
			ID:        "c10",
			DeviceID:  "5",
			UserName:  "Gabriel Castro",
			UserEmail: "gabriel.castro@email.com",
			Content:   "Diseño impresionante y muy portátil. Ideal para trabajar en cualquier lugar.",
			Rating:    4,
			CreatedAt: time.Date(2024, 1, 16, 10, 20, 0, 0, time.UTC),
		},
		{
			ID:        "c11",
			DeviceID:  "5",
			UserName:  "Isabella Ruiz",
			UserEmail: "isabella.ruiz@email.com",
			Content:   "Me encanta el teclado sin bordes, aunque tomó tiempo acostumbrarse.",
			Rating:    4,
			CreatedAt: time.Date(2024, 1, 14, 14, 55, 0, 0, time.UTC),
		},
		{
			ID:        "c12",
			DeviceID:  "6",
			UserName:  "Sebastián Vargas",
			UserEmail: "sebastian.vargas@email.com",
			Content:   "La versatilidad 2-en-1 es perfecta para presentaciones. Pantalla OLED espectacular.",
			Rating:    4,
			CreatedAt: time.Date(2024, 1, 12, 9, 40, 0, 0, time.UTC),
		},
		{
			ID:        "c13",
			DeviceID:  "6",
			UserName:  "Camila Jiménez",
			UserEmail: "camila.jimenez@email.com",
			Content:   "Elegante y funcional. La bisagra funciona perfectamente después de 6 meses de uso.",
			Rating:    5,
			CreatedAt: time.Date(2024, 1, 8, 16, 25, 0, 0, time.UTC),
		},
		{
			ID:        "c14",
			DeviceID:  "7",
			UserName:  "Mateo Guerrero",
			UserEmail: "mateo.guerrero@email.com",
			Content:   "La carga de 100W es increíble. De 0 a 100% en menos de 25 minutos.",
			Rating:    5,
			CreatedAt: time.Date(2024, 2, 5, 11, 15, 0, 0, time.UTC),
		},
		{
			ID:        "c15",
			DeviceID:  "7",
			UserName:  "Lucía Mendoza",
			UserEmail: "lucia.mendoza@email.com",
			Content:   "Excelente relación calidad-precio. OxygenOS es limpio y rápido.",
			Rating:    4,
			CreatedAt: time.Date(2024, 2, 2, 13, 50, 0, 0, time.UTC),
		},
		{
			ID:        "c16",
			DeviceID:  "8",
			UserName:  "Felipe Ortega",
			UserEmail: "felipe.ortega@email.com",
			Content:   "El mejor teclado del mercado. Construcción sólida que inspira confianza.",
			Rating:    5,
			CreatedAt: time.Date(2024, 1, 30, 8, 30, 0, 0, time.UTC),
		},
		{
			ID:        "c17",
			DeviceID:  "8",
			UserName:  "Natalia Ramírez",
			UserEmail: "natalia.ramirez@email.com",
			Content:   "Perfecto para trabajo empresarial. Ligero pero resistente.",
			Rating:    4,
			CreatedAt: time.Date(2024, 1, 26, 15, 20, 0, 0, time.UTC),
		},
	}
}
