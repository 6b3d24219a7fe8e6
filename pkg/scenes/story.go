package scenes

// 各关卡通关后的故事文本

const flowersStory = `Seiring berjalannya waktu semenjak kita bertemu, timbul rasa cinta dan sayang kepada dirimu. Awalnya aku ingin menyembunyikannya, namun hati ini tak bisa berbohong... :p

Kita bertemu di saat masing-masing membawa luka lama. Tapi aku yakin kita berbeda. Kita bisa saling menyembuhkan dan memberi kehangatan.

Dan tibalah saat itu, dengan segenap keberanian aku bertanya "Maukah kamu jadi pasanganku?" Dan jawabanmu "Aku bersedia" membuat duniaku berhenti sejenak.`

const catchStory = `Terimakasih udah mau membantu Sarah menangkap HP nya yang kayaknya hampir jatuh dari meja... Sarah.. Jangan ceroboh ya kalo megang benda atau naruh benda okey? xixixixi... :p Hp nya jadi bisa buat call an malam ini deh... YEAYYY!!!

Setiap malam kita selalu bertukar cerita baik suka dan duka... Suara ceria mu memecah heningnya malam... dan ku yakin di malam yang spesial ini aku bisa melihat kebahagiaan mu yang terpancar jelas lewat suara mu... :D

Terimakasih banyak ya sayang ku sudah selalu nemenin aku di setiap cerita yang ku ucapkan... Kamu selalu membuat ku merasa nyaman dan merasa tenang.`

const flappyStory = `Oh iya, Selain Telfonan kita juga sesekali bermain game bersama... :p

Rasanya tuh seru banget tahuuuu main sama kamu!!! Kamu tipikal perempuan yang bisa di ajak main game apa aja deh pokoknya. Mau yang perang perangan sampe game yang santai pun kamu selalu bisa ngebuat aku bahagia...

Game yang kita sering mainin itu ada Roblox dan Blood Strike... seru banget main sama kamu!!! Aku harap kamu juga ngerasain keseruannya juga ya sayang... Maaf kalo aku terkadang nub hehe...

I Love You Forever!`

const puzzleStory = `Puzzle ini menggambarkan sikap diri kamu yang luar biasa atas Kesabaran dan kecerdasan kamu...

Puzzle yang berantakan ibarat masalah yang menerjang diri kamu... kamu perlahan demi perlahan menyusun puzzle tersebut dengan penuh ketelitian dan kesabaran serta kecerdikan mu dalam menempatkan setiap keping puzzle di tempat yang tepat...

Setiap hubungan pasti memiliki masalahnya sendiri sendiri, namun kesabaran, ketelitian dan kecerdikan diri kamu lah yang membuat kita selalu bisa bersama bahagia kembali...

Setelah setiap masalah berhasil kamu selesaikan akan terlihat hal yang indah, sama seperti puzzle yang telah terselesaikan.`
