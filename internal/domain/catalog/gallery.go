package catalog

import "github.com/estudiolens/fotoestudio-api/internal/domain/entity"

// GalleryImages portafolio público del estudio, en orden de exhibición.
var GalleryImages = []entity.GalleryImage{
	{ID: 1, Src: "images/wed1.jpg?auto=compress&cs=tinysrgb&w=800&h=600&fit=crop", Alt: "Wedding Photography", Category: "Wedding"},
	{ID: 2, Src: "images/port1.jpg?auto=compress&cs=tinysrgb&w=800&h=600&fit=crop", Alt: "Portrait Photography", Category: "Portrait"},
	{ID: 3, Src: "images/cor1.jpg?auto=compress&cs=tinysrgb&w=800&h=600&fit=crop", Alt: "Event Photography", Category: "Event"},
	{ID: 4, Src: "images/wed2.jpg?auto=compress&cs=tinysrgb&w=800&h=600&fit=crop", Alt: "Wedding Ceremony", Category: "Wedding"},
	{ID: 5, Src: "images/prot11.jpg?auto=compress&cs=tinysrgb&w=800&h=600&fit=crop", Alt: "Professional Portrait", Category: "Portrait"},
	{ID: 6, Src: "images/cor2.jpg?auto=compress&cs=tinysrgb&w=800&h=600&fit=crop", Alt: "Corporate Event", Category: "Event"},
	{ID: 7, Src: "images/prod2.jpg?auto=compress&cs=tinysrgb&w=800&h=600&fit=crop", Alt: "Portrait", Category: "Portrait"},
	{ID: 8, Src: "images/wed3.jpg?auto=compress&cs=tinysrgb&w=800&h=600&fit=crop", Alt: "Wedding Reception", Category: "Wedding"},
	{ID: 9, Src: "images/prot10.jpg?auto=compress&cs=tinysrgb&w=800&h=600&fit=crop", Alt: "Family Portrait", Category: "Portrait"},
}
