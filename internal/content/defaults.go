package content

// Defaults returns the bundled content of the site.  It is the fallback of
// last resort and the base every persisted override is merged onto.  Each
// call builds a fresh value, so callers may modify the result freely.
func Defaults() SiteContent {
	return SiteContent{
		Hero: Hero{
			Name:            "MR.GNANA",
			Tagline:         "Pads • Sound Engineering • Live & Studio",
			CTA:             CTA{Listen: "Listen", Book: "Book Now"},
			BackgroundImage: "/images/hero section.JPG",
		},
		About: About{
			Title:        "About Me",
			Badge:        "Sound Engineer",
			Bio:          defaultBio,
			Instruments:  []string{"Synthesizers", "Pads", "Keys", "Sound Design"},
			Genres:       []string{"Ambient", "Electronic", "Cinematic", "Worship", "Indie"},
			ProfileImage: "/images/7.JPG",
		},
		Music: MusicSection{
			Title:    "My Music",
			Subtitle: "Listen to my latest productions",
			Tracks:   []Track{},
		},
		Gallery: GallerySection{
			Title:    "Gallery",
			Subtitle: "A collection of moments",
			Images:   defaultImages(),
		},
		Videos: VideoSection{
			Title:    "Videos",
			Subtitle: "Watch my latest performances and content",
			Videos:   []Video{},
		},
		Services: ServiceSection{
			Title:    "Services",
			Subtitle: "Professional audio solutions for every need",
			Items:    defaultServices(),
		},
		Events: EventSection{
			Title:    "Events",
			Subtitle: "Join Us for Upcoming Events",
			Upcoming: []Event{},
			Past:     []Event{},
		},
		Contact: ContactSection{
			Title:    "Let's Connect",
			Subtitle: "Ready to collaborate or book a show?",
			Message:  "I'm always excited to work on new projects and connect with fellow music enthusiasts. Whether you need a live performer, studio production, or custom sound design, let's create something amazing together.",
			Email:    "mr.gnana08@gmail.com",
			Socials:  defaultSocials(),
		},
		Nav: NavSection{
			Logo:  "MR.GNANA",
			Links: defaultNavLinks(),
		},
		Footer: Footer{
			Copyright: "© 2025 Mr.Gnana. All rights reserved.",
			Tagline:   "Crafting sonic experiences",
		},
	}
}

const defaultBio = `I'm Mr.Gnana, a passionate musician and sound engineer dedicated to crafting immersive sonic experiences. With years of experience in live performances and studio production, I bring a unique blend of technical precision and creative artistry to every project.

My journey in music started with a deep fascination for atmospheric sounds and how they can transform spaces. Today, I specialize in creating lush pad textures, cinematic soundscapes, and polished productions that resonate with audiences.

Whether on stage or behind the mixing console, I'm committed to delivering audio excellence that exceeds expectations.`

// defaultImages are the seed photos.  Their ids are negative so they never
// collide with database rows and the admin panel can tell them apart.
func defaultImages() []Image {
	return []Image{
		{ID: -1, Src: "/images/1.JPG", Alt: "Live performance at concert venue"},
		{ID: -2, Src: "/images/2.JPG", Alt: "Studio session setup"},
		{ID: -3, Src: "/images/3.JPG", Alt: "Festival performance"},
		{ID: -4, Src: "/images/4.jpeg", Alt: "Intimate venue show"},
		{ID: -5, Src: "/images/5.jpeg", Alt: "Behind the scenes"},
		{ID: -6, Src: "/images/6.jpeg", Alt: "Sound check preparations"},
	}
}

func defaultServices() []Service {
	return []Service{
		{
			ID:          1,
			Title:       "Live Performance",
			Description: "Elevate your event with immersive live performances featuring atmospheric pads, synthesizers, and real-time sound design. Perfect for concerts, worship services, and corporate events.",
			Icon:        "music",
		},
		{
			ID:          2,
			Title:       "Mixing & Mastering",
			Description: "Professional mixing and mastering services that bring clarity, depth, and polish to your tracks. Industry-standard processing with a creative touch.",
			Icon:        "sliders",
		},
		{
			ID:          3,
			Title:       "Sound Design",
			Description: "Custom sound design for films, games, podcasts, and multimedia projects. From subtle ambiences to bold sonic textures, tailored to your vision.",
			Icon:        "waveform",
		},
	}
}

func defaultSocials() []Social {
	return []Social{
		{Name: "Instagram", URL: "https://www.instagram.com/am_gnanaa?igsh=MXhidDVia2szb2x3bA%3D%3D&utm_source=qr", Icon: "instagram"},
		{Name: "YouTube", URL: "https://youtube.com/@am_gnanaa?si=sACafU4nviW1E84m", Icon: "youtube"},
		{Name: "X", URL: "https://x.com/mrgnana8?s=11", Icon: "x"},
		{Name: "Pinterest", URL: "https://pin.it/4hz97nVeC", Icon: "pinterest"},
	}
}

func defaultNavLinks() []NavLink {
	return []NavLink{
		{Label: "About", Href: "#about"},
		{Label: "Music", Href: "#music"},
		{Label: "Services", Href: "#services"},
		{Label: "Gallery", Href: "#gallery"},
		{Label: "Videos", Href: "#videos"},
		{Label: "Events", Href: "#events"},
		{Label: "Contact", Href: "#contact"},
	}
}
